package sexpr

import (
	_ "embed"
)

// MemoryTest is a WebAssembly script exercising memory sections, loads and
// stores. It is used by the demo command and as a larger test input.
//
//go:embed testdata/memory.wast
var MemoryTest string
