package application

import (
	"archive/zip"
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"sort"
	"testing"

	"github.com/faizandev1/image-resizer-compressor-pro/processing/domain"
)

func newBatch(t *testing.T) *BatchProcessor {
	t.Helper()
	return NewBatchProcessor(NewProcessor())
}

func readArchive(t *testing.T, data []byte) map[string][]byte {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("output is not a readable archive: %v", err)
	}
	entries := make(map[string][]byte, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("failed to open entry %s: %v", f.Name, err)
		}
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(rc); err != nil {
			t.Fatalf("failed to read entry %s: %v", f.Name, err)
		}
		rc.Close()
		entries[f.Name] = buf.Bytes()
	}
	return entries
}

func entrySize(t *testing.T, data []byte) (int, int) {
	t.Helper()
	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("entry is not decodable PNG: %v", err)
	}
	return cfg.Width, cfg.Height
}

func TestProcessAllSkipsBadFilesButKeepsGood(t *testing.T) {
	files := []BatchFile{
		{Name: "a.png", Data: pngBytes(t, 20, 10, color.White)},
		{Name: "empty.png", Data: nil},
		{Name: "junk.png", Data: []byte("not an image")},
		{Name: "b.png", Data: pngBytes(t, 10, 10, color.White)},
	}

	out, processed, err := newBatch(t).ProcessAll(files, BatchOptions{
		Quality: 85,
		Format:  domain.FormatPNG,
	})
	if err != nil {
		t.Fatalf("ProcessAll() error: %v", err)
	}
	if processed != 2 {
		t.Errorf("processed = %d, want 2", processed)
	}

	entries := readArchive(t, out)
	if len(entries) != 2 {
		t.Fatalf("archive has %d entries, want 2", len(entries))
	}
	for _, name := range []string{"a.png", "b.png"} {
		if _, ok := entries[name]; !ok {
			t.Errorf("archive is missing entry %s", name)
		}
	}
}

func TestProcessAllFailsWhenNothingProcessed(t *testing.T) {
	files := []BatchFile{
		{Name: "a.png", Data: nil},
		{Name: "b.png", Data: []byte("junk")},
		{Name: "c.png", Data: nil},
	}

	_, _, err := newBatch(t).ProcessAll(files, BatchOptions{Quality: 85, Format: domain.FormatPNG})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("ProcessAll() error = %v, want ErrInvalidInput", err)
	}
}

func TestProcessAllPercentagePresetIsPerFile(t *testing.T) {
	files := []BatchFile{
		{Name: "big.png", Data: pngBytes(t, 800, 600, color.White)},
		{Name: "square.png", Data: pngBytes(t, 1000, 1000, color.White)},
	}

	out, _, err := newBatch(t).ProcessAll(files, BatchOptions{
		Dims:    domain.DimensionSpec{KeepRatio: true},
		Preset:  domain.ParsePreset("50%"),
		Quality: 85,
		Format:  domain.FormatPNG,
	})
	if err != nil {
		t.Fatalf("ProcessAll() error: %v", err)
	}

	entries := readArchive(t, out)
	if w, h := entrySize(t, entries["big.png"]); w != 400 || h != 300 {
		t.Errorf("big.png = %dx%d, want 400x300", w, h)
	}
	if w, h := entrySize(t, entries["square.png"]); w != 500 || h != 500 {
		t.Errorf("square.png = %dx%d, want 500x500", w, h)
	}
}

func TestProcessAllFixedPresetSharedAcrossFiles(t *testing.T) {
	files := []BatchFile{
		{Name: "a.png", Data: pngBytes(t, 100, 80, color.White)},
		{Name: "b.png", Data: pngBytes(t, 200, 160, color.White)},
	}

	out, _, err := newBatch(t).ProcessAll(files, BatchOptions{
		Dims:    domain.DimensionSpec{KeepRatio: true},
		Preset:  domain.ParsePreset("50x50"),
		Quality: 85,
		Format:  domain.FormatPNG,
	})
	if err != nil {
		t.Fatalf("ProcessAll() error: %v", err)
	}

	entries := readArchive(t, out)
	for name := range entries {
		if w, h := entrySize(t, entries[name]); w != 50 || h != 40 {
			t.Errorf("%s = %dx%d, want 50x40 (fit inside 50x50)", name, w, h)
		}
	}
}

func TestProcessAllMalformedPresetFallsBackToDims(t *testing.T) {
	files := []BatchFile{
		{Name: "a.png", Data: pngBytes(t, 100, 50, color.White)},
	}
	w := 10

	out, _, err := newBatch(t).ProcessAll(files, BatchOptions{
		Dims:    domain.DimensionSpec{Width: &w, KeepRatio: true},
		Preset:  domain.ParsePreset("not-a-preset"),
		Quality: 85,
		Format:  domain.FormatPNG,
	})
	if err != nil {
		t.Fatalf("ProcessAll() error: %v", err)
	}

	entries := readArchive(t, out)
	if gw, gh := entrySize(t, entries["a.png"]); gw != 10 || gh != 5 {
		t.Errorf("a.png = %dx%d, want 10x5", gw, gh)
	}
}

func TestProcessAllOversizePresetAbortsBatch(t *testing.T) {
	files := []BatchFile{
		{Name: "a.png", Data: pngBytes(t, 10, 10, color.White)},
	}

	_, _, err := newBatch(t).ProcessAll(files, BatchOptions{
		Preset:  domain.ParsePreset("30000x30000"),
		Quality: 85,
		Format:  domain.FormatPNG,
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("ProcessAll() error = %v, want ErrInvalidInput", err)
	}
}

func TestProcessAllDisambiguatesCollidingNames(t *testing.T) {
	files := []BatchFile{
		{Name: "photo.jpg", Data: pngBytes(t, 10, 10, color.White)},
		{Name: "dir/photo.jpg", Data: pngBytes(t, 10, 10, color.White)},
	}

	out, _, err := newBatch(t).ProcessAll(files, BatchOptions{Quality: 85, Format: domain.FormatPNG})
	if err != nil {
		t.Fatalf("ProcessAll() error: %v", err)
	}

	entries := readArchive(t, out)
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	want := []string{"photo.png", "photo_2.png"}
	if len(names) != len(want) || names[0] != want[0] || names[1] != want[1] {
		t.Errorf("archive entries = %v, want %v", names, want)
	}
}

func TestProcessAllNamesNamelessUploads(t *testing.T) {
	files := []BatchFile{
		{Name: "", Data: pngBytes(t, 10, 10, color.White)},
	}

	out, _, err := newBatch(t).ProcessAll(files, BatchOptions{Quality: 85, Format: domain.FormatPNG})
	if err != nil {
		t.Fatalf("ProcessAll() error: %v", err)
	}

	entries := readArchive(t, out)
	if _, ok := entries["image_1.png"]; !ok {
		names := make([]string, 0, len(entries))
		for name := range entries {
			names = append(names, name)
		}
		t.Errorf("archive entries = %v, want image_1.png", names)
	}
}
