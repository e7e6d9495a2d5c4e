package raster

import (
	"bufio"
	"context"
	"fmt"
	"image"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/segmentio/ksuid"

	"github.com/tsawler/gridscan/imaging"
	"github.com/tsawler/gridscan/internal/imgio"
)

// OrientationDetector asks tesseract's orientation and script detection
// (--psm 0) how far a page is rotated from upright.
type OrientationDetector struct {
	// Binary overrides the tesseract executable name.
	Binary string
}

// Detect returns the clockwise rotation needed to bring the page
// upright: 0, 90, 180 or 270 degrees.
func (d OrientationDetector) Detect(ctx context.Context, page *image.Gray) (int, error) {
	binary := d.Binary
	if binary == "" {
		binary = "tesseract"
	}

	tmpFile := filepath.Join(os.TempDir(), "gridscan-osd-"+ksuid.New().String()+".png")
	if err := imgio.WritePNG(tmpFile, page); err != nil {
		return 0, err
	}
	defer func() {
		if err := os.Remove(tmpFile); err != nil {
			log.Warn().Err(err).Str("component", "ORIENTATION").Msg(tmpFile + " could not be removed")
		}
	}()

	out, err := exec.CommandContext(ctx, binary, tmpFile, "stdout", "--psm", "0").CombinedOutput()
	if err != nil {
		log.Error().Err(err).Str("component", "ORIENTATION").Msg(string(out))
		return 0, fmt.Errorf("orientation detection: %w", err)
	}

	return parseOSDRotation(string(out))
}

// CorrectOrientation detects the page rotation and returns the page
// rotated upright. A page already upright is returned as is.
func (d OrientationDetector) CorrectOrientation(ctx context.Context, page *image.Gray) (*image.Gray, error) {
	degrees, err := d.Detect(ctx, page)
	if err != nil {
		return nil, err
	}
	if degrees == 0 {
		return page, nil
	}
	log.Debug().Str("component", "ORIENTATION").Int("rotate", degrees).Msg("correcting page orientation")
	return imaging.Rotate(page, degrees), nil
}

// parseOSDRotation pulls the "Rotate:" line out of tesseract OSD
// output. The value reported is the clockwise rotation to apply.
func parseOSDRotation(output string) (int, error) {
	sc := bufio.NewScanner(strings.NewReader(output))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if !strings.HasPrefix(line, "Rotate:") {
			continue
		}
		value := strings.TrimSpace(strings.TrimPrefix(line, "Rotate:"))
		degrees, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("malformed rotate value %q: %w", value, err)
		}
		switch degrees {
		case 0, 90, 180, 270:
			return degrees, nil
		default:
			return 0, fmt.Errorf("unexpected rotate value %d", degrees)
		}
	}
	return 0, fmt.Errorf("no Rotate line in OSD output")
}
