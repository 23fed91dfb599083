package items

import "errors"

var (
	// ErrInvalidArgs is returned when the new id or the clone id is empty.
	ErrInvalidArgs = errors.New("invalid parameters passed to clone")
	// ErrTemplateNotFound is returned when the clone id names no host template.
	ErrTemplateNotFound = errors.New("template item not found")
	// ErrDisabled is returned for definitions with enable set to false.
	ErrDisabled = errors.New("item disabled")
	// ErrIDCollision is returned when the new id already names a host template.
	ErrIDCollision = errors.New("item id already exists")
	// ErrInvalidDefinition is returned when a definition fails to decode or validate.
	ErrInvalidDefinition = errors.New("invalid item definition")
	// ErrCloneCycle is returned for definitions that clone each other in a loop.
	ErrCloneCycle = errors.New("clone cycle between mod items")
)
