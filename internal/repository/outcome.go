package repository

import "strings"

// Outcome reports the result of a create, update or delete. Message is a
// ready-to-flash sentence naming the entity; Err carries the failure kind.
type Outcome struct {
	OK      bool
	ID      uint
	Message string
	Err     error
}

func (o Outcome) Kind() Kind {
	return KindOf(o.Err)
}

// subject renders "Venue The Musical Hop", or just "Venue" when the name is
// unknown, e.g. because the row to delete could not be loaded.
func subject(entity, name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return entity
	}
	return entity + " " + name
}

func succeeded(id uint, message string) Outcome {
	return Outcome{OK: true, ID: id, Message: message}
}

func failed(id uint, err error, verb, entity, name string) Outcome {
	return Outcome{
		ID:      id,
		Err:     err,
		Message: "An error occurred. " + subject(entity, name) + " could not be " + verb + ".",
	}
}
