package main

import (
	"encoding/binary"
	"errors"
	"fmt"
)

var SerializerError = errors.New("invalid serialized data")

// SheetBinarySerializer packs a (grid, result) pair into one record:
// a little-endian uint32 grid length, the grid bytes, the result bytes.
type SheetBinarySerializer struct {
}

func NewSheetBinarySerializer() *SheetBinarySerializer {
	return &SheetBinarySerializer{}
}

func (s *SheetBinarySerializer) Marshal(grid string, result string) []byte {
	gridBytes := []byte(grid)

	serializedData := make([]byte, 0, 4+len(gridBytes)+len(result))

	serializedData = binary.LittleEndian.AppendUint32(serializedData, uint32(len(gridBytes)))
	serializedData = append(serializedData, gridBytes...)
	serializedData = append(serializedData, []byte(result)...)
	return serializedData
}

func (s *SheetBinarySerializer) Unmarshal(data []byte) (grid string, result string, err error) {
	if len(data) < 4 {
		return "", "", fmt.Errorf("%w: should be at least 4 bytes (data: %v)", SerializerError, string(data))
	}

	gridLength := binary.LittleEndian.Uint32(data)
	if len(data) < int(gridLength)+4 {
		return "", "", fmt.Errorf("%w: grid size is less than bytes amount (gridSize: %d; data: %v)", SerializerError, gridLength, string(data))
	}

	grid = string(data[4 : gridLength+4])
	result = string(data[gridLength+4:])
	return
}
