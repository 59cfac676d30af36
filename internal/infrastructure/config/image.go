package config

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/marcos-nsantos/asset-store/internal/domain/valueobject"
)

type ImageConfig struct {
	Sizes    ImageSizes                  `envconfig:"IMAGE_SIZES" default:"small:320x320:inside:webp,medium:768x768:inside:webp,large:1600x1600:inside:webp:noenlarge"`
	File     string                      `envconfig:"IMAGE_CONFIG_FILE"`
	Optimize valueobject.OptimizeOptions `ignored:"true"`
}

// ImageSizes decodes IMAGE_SIZES, a comma separated list of
// name:WIDTHxHEIGHT[:fit][:webp][:noenlarge]. Either dimension may be empty.
type ImageSizes []valueobject.SizeSpec

func (s *ImageSizes) Decode(value string) error {
	sizes, err := ParseImageSizes(value)
	if err != nil {
		return err
	}
	*s = sizes
	return nil
}

func ParseImageSizes(value string) (ImageSizes, error) {
	var sizes ImageSizes
	for entry := range strings.SplitSeq(value, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		size, err := parseSize(entry)
		if err != nil {
			return nil, err
		}
		sizes = append(sizes, size)
	}
	return sizes, nil
}

func parseSize(entry string) (valueobject.SizeSpec, error) {
	parts := strings.Split(entry, ":")
	size := valueobject.SizeSpec{Name: parts[0]}
	if size.Name == "" {
		return size, fmt.Errorf("image size %q: missing name", entry)
	}

	if len(parts) > 1 && parts[1] != "" {
		w, h, ok := strings.Cut(parts[1], "x")
		if !ok {
			return size, fmt.Errorf("image size %q: dimensions must be WIDTHxHEIGHT", entry)
		}
		var err error
		if size.Resize.Width, err = parseDimension(w); err != nil {
			return size, fmt.Errorf("image size %q: width: %w", entry, err)
		}
		if size.Resize.Height, err = parseDimension(h); err != nil {
			return size, fmt.Errorf("image size %q: height: %w", entry, err)
		}
		size.Resize.Fit = valueobject.FitCover
	}

	for _, flag := range parts[min(2, len(parts)):] {
		switch flag {
		case "webp":
			size.GenerateWebp = true
		case "noenlarge":
			size.Resize.WithoutEnlargement = true
		default:
			fit, err := valueobject.ParseFit(flag)
			if err != nil {
				return size, fmt.Errorf("image size %q: %w", entry, err)
			}
			size.Resize.Fit = fit
		}
	}

	return size, nil
}

func parseDimension(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative dimension %d", n)
	}
	return n, nil
}

type imageFile struct {
	ImageSizes      []valueobject.SizeSpec      `yaml:"imageSizes"`
	OptimizeOptions valueobject.OptimizeOptions `yaml:"optimizeOptions"`
}

// load applies the YAML image config file over the environment values. Fields
// missing from the file keep their current values.
func (c *ImageConfig) load() error {
	c.Optimize = valueobject.DefaultOptimizeOptions()
	if c.File == "" {
		return nil
	}

	data, err := readFile(c.File)
	if err != nil {
		return err
	}
	return c.apply(data)
}

func (c *ImageConfig) apply(data []byte) error {
	file := imageFile{OptimizeOptions: c.Optimize}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing image config: %w", err)
	}

	if file.ImageSizes != nil {
		for i := range file.ImageSizes {
			if file.ImageSizes[i].Name == "" {
				return fmt.Errorf("image config: size %d has no name", i)
			}
			fit, err := valueobject.ParseFit(string(file.ImageSizes[i].Resize.Fit))
			if err != nil {
				return fmt.Errorf("image config: size %q: %w", file.ImageSizes[i].Name, err)
			}
			file.ImageSizes[i].Resize.Fit = fit
		}
		c.Sizes = file.ImageSizes
	}
	compression, err := valueobject.ParseCompression(file.OptimizeOptions.TIFF.Compression)
	if err != nil {
		return fmt.Errorf("image config: %w", err)
	}
	file.OptimizeOptions.TIFF.Compression = compression
	c.Optimize = file.OptimizeOptions
	return nil
}
