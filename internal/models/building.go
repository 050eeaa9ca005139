package models

import "fmt"

// Building is a campus building catalog entry. Entries are never mutated once loaded.
type Building struct {
	BuildingCode string `json:"buildingCode"`
	BuildingName string `json:"buildingName"`
	Address      string `json:"address"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
}

// FormattedAddress renders the postal address the way it is shown next to a pin.
func (b Building) FormattedAddress() string {
	return fmt.Sprintf("%s, %s, %s %s", b.Address, b.City, b.State, b.ZipCode)
}

// String implements fmt.Stringer.
func (b Building) String() string {
	return b.BuildingName
}
