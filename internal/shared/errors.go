package shared

type Error string

// Implement the error interface
func (e Error) Error() string { return string(e) }

//------------
// Definitions
//------------

// repository errors
const ErrItemNotFound = Error("item not found")
const ErrConstraint = Error("constraint violation")
const ErrInvalidName = Error("invalid name")
