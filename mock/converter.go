package mock

import "github.com/fwojciec/recipex"

var _ recipex.Converter = (*Converter)(nil)

// Converter is a mock implementation of recipex.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
