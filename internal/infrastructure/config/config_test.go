package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcos-nsantos/asset-store/internal/domain/valueobject"
)

func TestParseImageSizes(t *testing.T) {
	t.Run("parses dimensions and flags", func(t *testing.T) {
		sizes, err := ParseImageSizes("small:320x240:inside:webp, large:1600x:noenlarge")

		require.NoError(t, err)
		assert.Equal(t, ImageSizes{
			{
				Name:         "small",
				Resize:       valueobject.ResizeOptions{Width: 320, Height: 240, Fit: valueobject.FitInside},
				GenerateWebp: true,
			},
			{
				Name:   "large",
				Resize: valueobject.ResizeOptions{Width: 1600, Fit: valueobject.FitCover, WithoutEnlargement: true},
			},
		}, sizes)
	})

	t.Run("size without dimensions re-encodes only", func(t *testing.T) {
		sizes, err := ParseImageSizes("optimized::webp")

		require.NoError(t, err)
		require.Len(t, sizes, 1)
		assert.True(t, sizes[0].Resize.IsZero())
		assert.True(t, sizes[0].GenerateWebp)
	})

	t.Run("keeps order and duplicates", func(t *testing.T) {
		sizes, err := ParseImageSizes("b:10x10,a:20x20,b:30x30")

		require.NoError(t, err)
		require.Len(t, sizes, 3)
		assert.Equal(t, "b", sizes[0].Name)
		assert.Equal(t, "a", sizes[1].Name)
		assert.Equal(t, 30, sizes[2].Resize.Width)
	})

	t.Run("empty value yields no sizes", func(t *testing.T) {
		sizes, err := ParseImageSizes("")

		require.NoError(t, err)
		assert.Empty(t, sizes)
	})

	t.Run("rejects malformed entries", func(t *testing.T) {
		for _, value := range []string{
			":10x10",
			"small:10",
			"small:ax10",
			"small:10x-1",
			"small:10x10:stretch",
		} {
			_, err := ParseImageSizes(value)
			assert.Error(t, err, value)
		}
	})
}

func TestImageConfig_Apply(t *testing.T) {
	t.Run("file replaces sizes and merges optimize options", func(t *testing.T) {
		cfg := ImageConfig{
			Sizes:    ImageSizes{{Name: "env"}},
			Optimize: valueobject.DefaultOptimizeOptions(),
		}

		err := cfg.apply([]byte(`
imageSizes:
  - name: thumb
    resizeOptions:
      width: 150
      height: 150
    generateWebp: true
  - name: wide
    resizeOptions:
      width: 1200
      fit: inside
      withoutEnlargement: true
optimizeOptions:
  jpeg:
    quality: 70
  webp:
    lossless: true
`))

		require.NoError(t, err)
		require.Len(t, cfg.Sizes, 2)
		assert.Equal(t, valueobject.SizeSpec{
			Name:         "thumb",
			Resize:       valueobject.ResizeOptions{Width: 150, Height: 150, Fit: valueobject.FitCover},
			GenerateWebp: true,
		}, cfg.Sizes[0])
		assert.Equal(t, valueobject.FitInside, cfg.Sizes[1].Resize.Fit)
		assert.True(t, cfg.Sizes[1].Resize.WithoutEnlargement)
		assert.Equal(t, 70, cfg.Optimize.JPEG.Quality)
		assert.True(t, cfg.Optimize.WebP.Lossless)
		assert.Equal(t, 80, cfg.Optimize.WebP.Quality)
		assert.Equal(t, "deflate", cfg.Optimize.TIFF.Compression)
	})

	t.Run("file without sizes keeps env sizes", func(t *testing.T) {
		cfg := ImageConfig{Sizes: ImageSizes{{Name: "env"}}}

		err := cfg.apply([]byte("optimizeOptions:\n  png:\n    compressionLevel: 9\n"))

		require.NoError(t, err)
		assert.Equal(t, ImageSizes{{Name: "env"}}, cfg.Sizes)
		assert.Equal(t, 9, cfg.Optimize.PNG.CompressionLevel)
	})

	t.Run("rejects unknown fit", func(t *testing.T) {
		cfg := ImageConfig{}

		err := cfg.apply([]byte("imageSizes:\n  - name: a\n    resizeOptions:\n      fit: stretch\n"))

		assert.Error(t, err)
	})

	t.Run("rejects unnamed size", func(t *testing.T) {
		cfg := ImageConfig{}

		err := cfg.apply([]byte("imageSizes:\n  - generateWebp: true\n"))

		assert.Error(t, err)
	})

	t.Run("rejects tiff compression the encoder cannot write", func(t *testing.T) {
		cfg := ImageConfig{Optimize: valueobject.DefaultOptimizeOptions()}

		err := cfg.apply([]byte("optimizeOptions:\n  tiff:\n    compression: lzw\n"))

		assert.ErrorContains(t, err, "lzw")
	})

	t.Run("normalizes tiff compression", func(t *testing.T) {
		cfg := ImageConfig{Optimize: valueobject.DefaultOptimizeOptions()}

		err := cfg.apply([]byte("optimizeOptions:\n  tiff:\n    compression: DEFLATE\n"))

		require.NoError(t, err)
		assert.Equal(t, valueobject.CompressionDeflate, cfg.Optimize.TIFF.Compression)
	})
}

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_USER", "assets")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "assets")
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	t.Setenv("STORAGE_BUCKET", "bucket")
	t.Setenv("STORAGE_ACCESS_KEY_ID", "key")
	t.Setenv("STORAGE_SECRET_ACCESS_KEY", "secret")
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Chdir(t.TempDir())
		setRequiredEnv(t)

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, DriverS3, cfg.Storage.Driver)
		assert.Equal(t, "us-east-1", cfg.Storage.Region)
		assert.Len(t, cfg.Image.Sizes, 3)
		assert.Equal(t, valueobject.DefaultOptimizeOptions(), cfg.Image.Optimize)
		assert.Equal(t, int64(20<<20), cfg.Upload.MaxSize)
	})

	t.Run("reads sizes, params and image file", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		setRequiredEnv(t)

		file := filepath.Join(dir, "images.yaml")
		require.NoError(t, os.WriteFile(file, []byte("optimizeOptions:\n  jpeg:\n    quality: 60\n"), 0o600))

		t.Setenv("IMAGE_SIZES", "small:100x100")
		t.Setenv("IMAGE_CONFIG_FILE", file)
		t.Setenv("STORAGE_PARAMS", "CacheControl:max-age=60,StorageClass:STANDARD_IA")

		cfg, err := Load()

		require.NoError(t, err)
		require.Len(t, cfg.Image.Sizes, 1)
		assert.Equal(t, "small", cfg.Image.Sizes[0].Name)
		assert.Equal(t, 60, cfg.Image.Optimize.JPEG.Quality)
		assert.Equal(t, map[string]string{
			"CacheControl": "max-age=60",
			"StorageClass": "STANDARD_IA",
		}, cfg.Storage.Params)
	})

	t.Run("loads dotenv file", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		setRequiredEnv(t)
		t.Setenv("STORAGE_DRIVER", "")
		os.Unsetenv("STORAGE_DRIVER")

		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("STORAGE_DRIVER=minio\n"), 0o600))

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, DriverMinio, cfg.Storage.Driver)
	})

	t.Run("missing required env", func(t *testing.T) {
		t.Chdir(t.TempDir())
		setRequiredEnv(t)
		t.Setenv("STORAGE_BUCKET", "")
		os.Unsetenv("STORAGE_BUCKET")

		_, err := Load()

		assert.Error(t, err)
	})

	t.Run("missing image file", func(t *testing.T) {
		t.Chdir(t.TempDir())
		setRequiredEnv(t)
		t.Setenv("IMAGE_CONFIG_FILE", "does-not-exist.yaml")

		_, err := Load()

		assert.Error(t, err)
	})
}

func TestLoadImage(t *testing.T) {
	t.Run("needs no storage or database env", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("IMAGE_SIZES", "thumb:64x64:contain")

		image, err := LoadImage()

		require.NoError(t, err)
		require.Len(t, image.Sizes, 1)
		assert.Equal(t, "thumb", image.Sizes[0].Name)
	})
}

func TestLoadJWT(t *testing.T) {
	t.Run("reads secret and issuer", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("JWT_SECRET_KEY", "cli-secret")
		t.Setenv("JWT_ISSUER", "")
		os.Unsetenv("JWT_ISSUER")

		jwt, err := LoadJWT()

		require.NoError(t, err)
		assert.Equal(t, "cli-secret", jwt.SecretKey)
		assert.Equal(t, "asset-store", jwt.Issuer)
	})

	t.Run("requires secret", func(t *testing.T) {
		t.Chdir(t.TempDir())
		t.Setenv("JWT_SECRET_KEY", "")
		os.Unsetenv("JWT_SECRET_KEY")

		_, err := LoadJWT()

		assert.Error(t, err)
	})
}
