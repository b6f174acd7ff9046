package model

import "io"

// ImageFile is an event illustration picked by the user.
type ImageFile struct {
	Name    string
	Content io.Reader
}
