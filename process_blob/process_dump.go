package process_blob

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"hexbot/process"
	"hexbot/process/memory_map"
)

const (
	metadataFile  = "metadata.json"
	memoryMapFile = "process_memory_map.json"
)

type dumpMetadata struct {
	PID  process.ProcessID `json:"pid"`
	Name string            `json:"name"`
}

// ProcessDump is a read-only process image restored from a dump directory
type ProcessDump struct {
	*ProcessImage

	Name      string
	MemoryMap []memory_map.MemoryMapItem
}

// NewProcessDump creates a new, empty ProcessDump
func NewProcessDump() *ProcessDump {
	img := NewProcessImage(0)
	img.SetReadOnly(true)
	return &ProcessDump{ProcessImage: img}
}

func blobFileName(region memory_map.MemoryMapItem) string {
	return fmt.Sprintf("blob_0x%x_%d.bin", region.Address, region.Size)
}

// Load reads metadata, the memory map and every saved blob from dirname
func (p *ProcessDump) Load(dirname string) error {
	metadataBytes, err := os.ReadFile(filepath.Join(dirname, metadataFile))
	if err != nil {
		return fmt.Errorf("failed to read metadata: %w", err)
	}

	var metadata dumpMetadata
	if err := json.Unmarshal(metadataBytes, &metadata); err != nil {
		return fmt.Errorf("failed to unmarshal metadata: %w", err)
	}

	mmBytes, err := os.ReadFile(filepath.Join(dirname, memoryMapFile))
	if err != nil {
		return fmt.Errorf("failed to read memory map: %w", err)
	}

	var mm []memory_map.MemoryMapItem
	if err := json.Unmarshal(mmBytes, &mm); err != nil {
		return fmt.Errorf("failed to unmarshal memory map: %w", err)
	}
	memory_map.Sort(mm)

	img := NewProcessImage(metadata.PID)
	for _, region := range mm {
		filename := filepath.Join(dirname, blobFileName(region))
		data, err := os.ReadFile(filename)
		if os.IsNotExist(err) {
			continue // region listed but not saved
		}
		if err != nil {
			return fmt.Errorf("failed to read blob %s: %w", filename, err)
		}
		if len(data) != int(region.Size) {
			return fmt.Errorf("blob %s holds %d bytes, map says %d", filename, len(data), region.Size)
		}

		if err := img.Map(process.ProcessMemoryAddress(region.Address), data); err != nil {
			return fmt.Errorf("failed to map blob %s: %w", filename, err)
		}
	}
	img.SetReadOnly(true)

	p.ProcessImage = img
	p.Name = metadata.Name
	p.MemoryMap = mm
	return nil
}

// SaveDump reads every region from mem and writes it to dirname in the
// format Load understands. Any failed or short read aborts the dump.
func SaveDump(dirname string, mem process.Memory, name string, regions []memory_map.MemoryMapItem) error {
	if err := os.MkdirAll(dirname, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	metadataJSON, err := json.MarshalIndent(dumpMetadata{PID: mem.GetPID(), Name: name}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal metadata: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dirname, metadataFile), metadataJSON, 0644); err != nil {
		return fmt.Errorf("failed to write metadata file: %w", err)
	}

	sorted := make([]memory_map.MemoryMapItem, len(regions))
	copy(sorted, regions)
	memory_map.Sort(sorted)

	memoryMapJSON, err := json.MarshalIndent(sorted, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal memory map: %w", err)
	}

	if err := os.WriteFile(filepath.Join(dirname, memoryMapFile), memoryMapJSON, 0644); err != nil {
		return fmt.Errorf("failed to write memory map file: %w", err)
	}

	for _, region := range sorted {
		data, err := mem.ReadMemory(process.ProcessMemoryAddress(region.Address), process.ProcessMemorySize(region.Size))
		if err != nil {
			return fmt.Errorf("failed to read region 0x%x: %w", region.Address, err)
		}

		filename := filepath.Join(dirname, blobFileName(region))
		if err := os.WriteFile(filename, data, 0644); err != nil {
			return fmt.Errorf("failed to write blob %s: %w", filename, err)
		}
	}

	return nil
}
