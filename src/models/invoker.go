package models

import (
	"context"
	"errors"
	"log"
)

// ErrGeneration is the opaque failure callers receive when an invocation
// fails for any reason. The underlying cause goes no further than a
// logged diagnostic.
var ErrGeneration = errors.New("generation failed")

// Invoker sends an assembled request to the generation service. One
// attempt per call, no retries; overlapping-call discipline belongs to
// the session that owns the trigger.
type Invoker struct {
	Generator Generator
	Logger    *log.Logger
}

func NewInvoker(gen Generator) *Invoker {
	return &Invoker{Generator: gen, Logger: log.Default()}
}

// Invoke returns the generated text verbatim, or ErrGeneration. Any
// transport, service, or malformed-response error is classified the same
// way so callers never see the raw cause.
func (iv *Invoker) Invoke(ctx context.Context, req Request) (string, error) {
	if iv.Generator == nil {
		return "", ErrGeneration
	}
	text, err := iv.Generator.Generate(ctx, req)
	if err != nil {
		if iv.Logger != nil {
			iv.Logger.Printf("generation error: %v", err)
		}
		return "", ErrGeneration
	}
	return text, nil
}
