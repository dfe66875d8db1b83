// Package command defines command identifiers and the process-wide command
// enablement set.
package command

// Id identifies a user-level intention. Ids are only unique per dispatch
// context; applications define their own starting at UserBase.
type Id uint16

// Standard command ids.
const (
	None Id = 0

	Quit    Id = 1
	Close   Id = 4
	OK      Id = 10
	Cancel  Id = 11
	Yes     Id = 12
	No      Id = 13
	New     Id = 30
	Open    Id = 31
	Save    Id = 32
	Cut     Id = 20
	Copy    Id = 21
	Paste   Id = 22
	Undo    Id = 23
	Redo    Id = 24
	Suspend Id = 40

	// CommandSetChanged is broadcast through the view tree when the
	// enablement set has been mutated since the last delivery.
	CommandSetChanged Id = 52

	// UserBase is the first id reserved for applications.
	UserBase Id = 100
)
