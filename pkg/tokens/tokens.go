// Package tokens counts prompt tokens with tiktoken. When the encoding cannot
// be loaded (no network on first use, unknown model) it falls back to a
// length based estimate so callers never fail on counting.
package tokens

import (
	"sync"
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"
)

const fallbackEncoding = "cl100k_base"

type Counter struct {
	model string

	once     sync.Once
	encoding *tiktoken.Tiktoken
}

func NewCounter(model string) *Counter {
	return &Counter{model: model}
}

// Count returns the number of tokens in text and whether the value is exact.
func (c *Counter) Count(text string) (int, bool) {
	c.once.Do(c.load)
	if c.encoding == nil {
		return Estimate(text), false
	}
	return len(c.encoding.Encode(text, nil, nil)), true
}

func (c *Counter) load() {
	encoding, err := tiktoken.EncodingForModel(c.model)
	if err != nil {
		encoding, err = tiktoken.GetEncoding(fallbackEncoding)
	}
	if err != nil {
		return
	}
	c.encoding = encoding
}

// Estimate approximates a token count as one token per four characters.
func Estimate(text string) int {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return 0
	}
	return (n + 3) / 4
}
