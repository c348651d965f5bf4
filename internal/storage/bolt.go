// Package storage saves and restores processed sessions in a bbolt file.
//
// Each index is written to its own bucket keyed by an 8-byte big-endian
// sequence number, so the insertion order of names and years survives the
// round trip along with every per-key sequence.
package storage

import (
	"encoding/binary"
	"os"
	"time"

	"babynames/internal/engine"
	"babynames/internal/models"
	"github.com/goccy/go-json"
	"github.com/labstack/gommon/log"
	"github.com/pkg/errors"
	bolt "go.etcd.io/bbolt"
)

// DefaultPath is used when no file name is given.
const DefaultPath = "baby_names.db"

const formatVersion = 1

var (
	bucketMeta  = []byte("meta")
	bucketNames = []byte("names")
	bucketYears = []byte("years")

	keyVersion = []byte("version")
	keyMaxYear = []byte("max_year")

	// ErrCorrupt is returned when a file does not hold a saved session.
	ErrCorrupt = errors.New("storage: not a processed data file")
)

// Save writes s to path, replacing any previous content. An empty session
// is refused with engine.ErrEmptyDataset.
func Save(path string, s *engine.Session) error {
	if s.Empty() {
		return errors.Wrap(engine.ErrEmptyDataset, "nothing to save")
	}

	// Write a sibling file and rename it so a failed save keeps the old one.
	tmp := path + ".saving"
	_ = os.Remove(tmp)

	db, err := bolt.Open(tmp, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return errors.Wrapf(err, "open %s", tmp)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		meta, err := tx.CreateBucket(bucketMeta)
		if err != nil {
			return err
		}
		if err := meta.Put(keyVersion, u64(formatVersion)); err != nil {
			return err
		}
		if err := meta.Put(keyMaxYear, u64(uint64(s.MaxYear))); err != nil {
			return err
		}

		names, err := tx.CreateBucket(bucketNames)
		if err != nil {
			return err
		}
		for i, h := range s.Names.Histories() {
			if err := putJSON(names, uint64(i), h); err != nil {
				return errors.Wrapf(err, "name %s", h.Name)
			}
		}

		years, err := tx.CreateBucket(bucketYears)
		if err != nil {
			return err
		}
		for i, y := range s.TopTen.Buckets() {
			if err := putJSON(years, uint64(i), y); err != nil {
				return errors.Wrapf(err, "year %d", y.Year)
			}
		}
		return nil
	})
	if cerr := db.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(tmp)
		return errors.Wrap(err, "writing processed data")
	}

	if err := os.Rename(tmp, path); err != nil {
		return errors.Wrapf(err, "rename to %s", path)
	}
	log.Infof("saved processed data in %s (%d names, %d years)", path, s.Names.Len(), s.TopTen.Len())
	return nil
}

// Load reads a session previously written by Save.
func Load(path string) (*engine.Session, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrapf(err, "could not load processed data from %s", path)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second, ReadOnly: true})
	if err != nil {
		return nil, errors.Wrapf(ErrCorrupt, "%s: %v", path, err)
	}
	defer db.Close()

	var (
		names   []models.NameHistory
		years   []models.YearTopTen
		maxYear int
	)
	err = db.View(func(tx *bolt.Tx) error {
		meta := tx.Bucket(bucketMeta)
		if meta == nil {
			return ErrCorrupt
		}
		if v := meta.Get(keyVersion); len(v) != 8 || binary.BigEndian.Uint64(v) != formatVersion {
			return errors.Wrap(ErrCorrupt, "unknown format version")
		}
		v := meta.Get(keyMaxYear)
		if len(v) != 8 {
			return errors.Wrap(ErrCorrupt, "missing last year")
		}
		maxYear = int(binary.BigEndian.Uint64(v))

		nb, yb := tx.Bucket(bucketNames), tx.Bucket(bucketYears)
		if nb == nil || yb == nil {
			return ErrCorrupt
		}
		// Cursors walk keys in byte order, which is the sequence order.
		if err := nb.ForEach(func(_, v []byte) error {
			var h models.NameHistory
			if err := json.Unmarshal(v, &h); err != nil {
				return errors.Wrap(ErrCorrupt, err.Error())
			}
			names = append(names, h)
			return nil
		}); err != nil {
			return err
		}
		return yb.ForEach(func(_, v []byte) error {
			var y models.YearTopTen
			if err := json.Unmarshal(v, &y); err != nil {
				return errors.Wrap(ErrCorrupt, err.Error())
			}
			years = append(years, y)
			return nil
		})
	})
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}

	log.Infof("loaded processed data from %s (%d names, %d years)", path, len(names), len(years))
	return engine.RestoreSession(names, years, maxYear), nil
}

func putJSON(b *bolt.Bucket, seq uint64, v interface{}) error {
	buf, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return b.Put(u64(seq), buf)
}

func u64(v uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, v)
	return b
}
