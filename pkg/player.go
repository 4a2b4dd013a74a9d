package pkg

import (
	"fmt"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/google/uuid"
)

// Device identifies this unit. The ID tags radio broadcasts; the name is
// only for people.
type Device struct {
	ID   uuid.UUID
	Name string
}

func NewDevice(name string) Device {
	if name == "" {
		name = petname.Generate(2, "-")
	}
	return Device{ID: uuid.New(), Name: name}
}

func (d Device) String() string {
	return fmt.Sprintf("%s (%s)", d.Name, d.ID)
}
