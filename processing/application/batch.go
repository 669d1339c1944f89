package application

import (
	"archive/zip"
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/faizandev1/image-resizer-compressor-pro/processing/domain"
)

// BatchFile is one uploaded entry in a batch request, read fully into memory
// by the transport layer.
type BatchFile struct {
	Name string
	Data []byte
}

// BatchOptions are the shared knobs for a whole batch. The preset, when
// present, takes priority over the explicit dimensions.
type BatchOptions struct {
	Dims    domain.DimensionSpec
	Preset  domain.Preset
	Quality int
	Format  domain.OutputFormat
}

// BatchProcessor runs the single-file pipeline over a collection of uploads
// and packs the results into a ZIP archive. Files are processed sequentially
// in arrival order, so entry names are deterministic for identical input.
type BatchProcessor struct {
	processor *Processor
}

func NewBatchProcessor(p *Processor) *BatchProcessor {
	return &BatchProcessor{processor: p}
}

// ProcessAll transforms every file and returns the finished archive plus the
// number of entries written. Empty or undecodable files are skipped rather
// than failing the batch; option validation failures (such as an out-of-range
// preset size) still abort the whole request. A batch in which nothing could
// be processed is an input error, never an empty archive.
func (b *BatchProcessor) ProcessAll(files []BatchFile, opts BatchOptions) ([]byte, int, error) {
	archive := newZipBuilder()
	processed := 0

	for _, f := range files {
		if len(f.Data) == 0 {
			log.Warn().Str("file", f.Name).Msg("Skipping empty upload")
			continue
		}

		raster, err := Decode(f.Data)
		if err != nil {
			log.Warn().Err(err).Str("file", f.Name).Msg("Skipping unreadable image")
			continue
		}

		dims := resolveBatchDims(raster, opts)
		res, err := b.processor.ProcessRaster(raster, ProcessOptions{
			Dims:    dims,
			Quality: opts.Quality,
			Format:  opts.Format,
		})
		if err != nil {
			return nil, 0, err
		}

		name := entryName(f.Name, processed+1, opts.Format, archive)
		if err := archive.Add(name, res.Bytes); err != nil {
			return nil, 0, fmt.Errorf("failed to write archive entry %s: %w", name, err)
		}
		processed++
	}

	if processed == 0 {
		return nil, 0, fmt.Errorf("all uploaded files were empty or invalid: %w", domain.ErrInvalidInput)
	}

	out, err := archive.Finalize()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to finalize archive: %w", err)
	}
	return out, processed, nil
}

// resolveBatchDims applies the per-file priority order: a percentage preset
// scales each file's own original size, a fixed preset applies one box to
// every file, and otherwise the request's explicit dimensions are shared.
func resolveBatchDims(r domain.Raster, opts BatchOptions) domain.DimensionSpec {
	switch opts.Preset.Kind {
	case domain.PresetPercentage:
		w := scalePct(r.Width(), opts.Preset.Pct)
		h := scalePct(r.Height(), opts.Preset.Pct)
		return domain.DimensionSpec{Width: &w, Height: &h, KeepRatio: opts.Dims.KeepRatio}
	case domain.PresetFixed:
		w, h := opts.Preset.Width, opts.Preset.Height
		return domain.DimensionSpec{Width: &w, Height: &h, KeepRatio: opts.Dims.KeepRatio}
	default:
		return opts.Dims
	}
}

func scalePct(n, pct int) int {
	v := int(math.Round(float64(n) * float64(pct) / 100))
	if v < 1 {
		return 1
	}
	return v
}

// entryName derives a collision-safe archive entry name: sanitized base name
// plus the output format's extension, disambiguated with the 1-based
// processing index when an identical entry already exists.
func entryName(original string, index int, f domain.OutputFormat, b *zipBuilder) string {
	if strings.TrimSpace(original) == "" {
		original = fmt.Sprintf("image_%d", index)
	}
	base, _ := domain.SplitNameExt(domain.SanitizeFilename(original))
	name := base + f.Ext()
	if b.Has(name) {
		name = fmt.Sprintf("%s_%d%s", base, index, f.Ext())
	}
	return name
}

// zipBuilder accumulates (name, bytes) entries in memory and finalizes once.
type zipBuilder struct {
	buf   bytes.Buffer
	zw    *zip.Writer
	names map[string]struct{}
}

func newZipBuilder() *zipBuilder {
	b := &zipBuilder{names: make(map[string]struct{})}
	b.zw = zip.NewWriter(&b.buf)
	return b
}

func (b *zipBuilder) Has(name string) bool {
	_, ok := b.names[name]
	return ok
}

func (b *zipBuilder) Add(name string, data []byte) error {
	w, err := b.zw.Create(name)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}
	b.names[name] = struct{}{}
	return nil
}

func (b *zipBuilder) Finalize() ([]byte, error) {
	if err := b.zw.Close(); err != nil {
		return nil, err
	}
	return b.buf.Bytes(), nil
}
