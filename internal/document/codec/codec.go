// Package codec translates finalized draw instructions into the physical
// document format. The compositor never depends on the encoding; it hands a
// finished page sequence across this boundary and surfaces codec failures to
// the caller verbatim.
package codec

import (
	"errors"

	"github.com/smallbiznis/lockerdocs/internal/document/layout"
)

var ErrEncode = errors.New("document_encode_failed")

// Codec encodes finalized pages into a byte stream.
type Codec interface {
	Encode(pages []*layout.Page) ([]byte, error)

	// ContentType is the MIME type of the encoded stream.
	ContentType() string
}
