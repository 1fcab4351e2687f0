package api

import (
	"bytes"
	"errors"

	"github.com/aexlab51/PNG-library/pkg/chunk"
	"github.com/aexlab51/PNG-library/pkg/png"
)

// BuildReport parses data as a container file and summarizes the result.
// Parse and validation failures are not errors here: they are recorded in
// the report, since a malformed upload is a legitimate inspection outcome.
func BuildReport(data []byte) *InspectionReport {
	report := &InspectionReport{SizeBytes: int64(len(data))}

	f, err := png.ReadFile(bytes.NewReader(data))
	if err != nil {
		report.Container = "unknown"
		report.InvalidReason = err.Error()
		report.ErrorKind = errorKind(err)
		return report
	}

	report.Container = f.Type.String()
	report.Chunks = make([]ChunkSummary, 0, len(f.Chunks))
	for _, c := range f.Chunks {
		length, err := chunk.DataLength(c)
		if err != nil {
			report.InvalidReason = err.Error()
			report.ErrorKind = errorKind(err)
			return report
		}
		t := c.Type()
		report.Chunks = append(report.Chunks, ChunkSummary{
			Type:       t.String(),
			DataLength: length,
			Critical:   t.Critical(),
			Public:     t.Public(),
			SafeToCopy: t.SafeToCopy(),
		})
	}

	if f.Type != png.ContainerPNG {
		// MNG/JNG vocabularies have no document validator here; framing
		// and CRC checks passing is as far as inspection goes.
		report.Valid = true
		return report
	}

	img, err := png.ImageFromChunks(f.Chunks)
	if err != nil {
		report.InvalidReason = err.Error()
		report.ErrorKind = errorKind(err)
		return report
	}
	report.Valid = true
	report.Image = &ImageSummary{
		Width:     img.Header.Width(),
		Height:    img.Header.Height(),
		BitDepth:  img.Header.BitDepth(),
		ColorType: uint8(img.Header.ColorType()),
		Interlace: interlaceName(img.Header.Interlace()),
		NumData:   len(img.Data),
	}
	return report
}

func errorKind(err error) string {
	var ce *chunk.Error
	if errors.As(err, &ce) {
		return ce.Kind.String()
	}
	return "io"
}

func interlaceName(m chunk.InterlaceMethod) string {
	if m == chunk.InterlaceAdam7 {
		return "adam7"
	}
	return "none"
}
