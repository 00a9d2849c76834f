package wgpu

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/gogpu/naga"
)

//go:embed shaders/blit.wgsl
var blitShaderSource string

// spirvMagic is the SPIR-V magic number in little-endian byte order.
const spirvMagic = 0x07230203

// compileBlitShader compiles the embedded blit WGSL to SPIR-V words
// and validates the output. The compiled module is what the
// presentation path binds when drawing the frame texture.
func compileBlitShader() ([]uint32, error) {
	if blitShaderSource == "" {
		return nil, errors.New("wgpu: blit shader source is empty")
	}

	spirvBytes, err := naga.Compile(blitShaderSource)
	if err != nil {
		return nil, fmt.Errorf("wgpu: blit shader compilation failed: %w", err)
	}
	words, err := spirvWords(spirvBytes)
	if err != nil {
		return nil, err
	}
	if words[0] != spirvMagic {
		return nil, fmt.Errorf("wgpu: invalid SPIR-V magic 0x%08X", words[0])
	}
	return words, nil
}

// spirvWords reinterprets little-endian SPIR-V bytes as words.
func spirvWords(b []byte) ([]uint32, error) {
	if len(b) == 0 || len(b)%4 != 0 {
		return nil, fmt.Errorf("wgpu: SPIR-V length %d is not a multiple of 4", len(b))
	}
	words := make([]uint32, len(b)/4)
	for i := range words {
		words[i] = uint32(b[i*4]) |
			uint32(b[i*4+1])<<8 |
			uint32(b[i*4+2])<<16 |
			uint32(b[i*4+3])<<24
	}
	return words, nil
}
