package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"
	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog/log"
)

const archiveExt = ".zst"

// Encode renders the report as two-space indented JSON with sorted map keys,
// so identical reports encode to identical bytes.
func Encode(r EpochReport) ([]byte, error) {
	data, err := sonic.ConfigStd.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode report: %w", err)
	}
	return data, nil
}

// Path returns the report file of epoch under dir.
func Path(dir, epoch string) string {
	return filepath.Join(dir, epoch+".json")
}

// Write encodes r and writes it to dir/<epoch>.json, plus a zstd copy when
// archive is set. Each file is written to a temporary name and renamed into
// place, so readers never observe a partial report.
func Write(dir string, r EpochReport, archive bool) (string, error) {
	data, err := Encode(r)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create weights dir: %w", err)
	}

	path := Path(dir, r.Epoch)
	if err := writeAtomic(path, data); err != nil {
		return "", err
	}

	if archive {
		compressed, err := compress(data)
		if err != nil {
			return "", err
		}
		if err := writeAtomic(path+archiveExt, compressed); err != nil {
			return "", err
		}
		log.Debug().Str("path", path+archiveExt).Int("bytes", len(compressed)).Msg("wrote report archive")
	}

	return path, nil
}

func compress(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	defer enc.Close()
	return enc.EncodeAll(data, nil), nil
}

func writeAtomic(path string, data []byte) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			if rerr := os.Remove(tmp.Name()); rerr != nil && !os.IsNotExist(rerr) {
				log.Error().Err(rerr).Str("path", tmp.Name()).Msg("failed to remove temp file")
			}
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename %s: %w", path, err)
	}
	return nil
}
