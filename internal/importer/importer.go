package importer

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"portview/internal/domain"
)

// ErrMalformedInput marks CSV text that does not yield a header row plus
// at least one data row.
var ErrMalformedInput = errors.New("CSV file must have at least a header row and one data row")

// ErrInvalidKind marks a request for an unrecognized data kind. With the
// fixed set of four upload kinds this is a programming error, not a user
// input error.
var ErrInvalidKind = errors.New("invalid data kind")

// Kind names one of the four importable data types.
type Kind string

const (
	KindActions     Kind = "actions"
	KindActors      Kind = "actors"
	KindAssets      Kind = "assets"
	KindConnections Kind = "connections"
)

// Kinds lists all importable kinds in upload-zone order.
var Kinds = []Kind{KindActions, KindActors, KindAssets, KindConnections}

func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindActions, KindActors, KindAssets, KindConnections:
		return Kind(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidKind, s)
}

// Batch holds entities produced by one or more imports; at most one
// collection is populated per ImportFile call.
type Batch struct {
	Actions     []domain.Action     `json:"actions"`
	Actors      []domain.Actor      `json:"actors"`
	Assets      []domain.Asset      `json:"assets"`
	Connections []domain.Connection `json:"connections"`
}

func (b Batch) Len() int {
	return len(b.Actions) + len(b.Actors) + len(b.Assets) + len(b.Connections)
}

// Outcome reports one import attempt. A failed import is still a normal
// Outcome value: faults are captured here instead of propagating, so a
// bad file can never crash the surface that invoked it, and each upload
// zone fails independently.
type Outcome struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Batch   Batch    `json:"data"`
	Errors  []string `json:"errors,omitempty"`
}

// Importer turns raw CSV file content into typed entity batches. The
// clock and id source are injectable for tests; zero values fall back to
// time.Now and random UUIDs.
type Importer struct {
	Now   func() time.Time
	NewID func() string
	Log   *logrus.Logger
}

func New() Importer {
	return Importer{
		Now:   time.Now,
		NewID: func() string { return uuid.New().String() },
		Log:   logrus.StandardLogger(),
	}
}

func (im Importer) now() time.Time {
	if im.Now != nil {
		return im.Now()
	}
	return time.Now()
}

func (im Importer) newID() string {
	if im.NewID != nil {
		return im.NewID()
	}
	return uuid.New().String()
}

func (im Importer) log() *logrus.Logger {
	if im.Log != nil {
		return im.Log
	}
	return logrus.StandardLogger()
}

// ImportFile tokenizes content and maps it with the mapper for kind. One
// file, one declared kind per call; the caller invokes it once per upload
// zone. Every data row produces exactly one entity, however sparse.
func (im Importer) ImportFile(content []byte, kind Kind) Outcome {
	rows := Tokenize(string(content))
	if len(rows) < 2 {
		return im.failed(kind, ErrMalformedInput)
	}
	header, data := rows[0], rows[1:]

	var batch Batch
	switch kind {
	case KindActions:
		batch.Actions = im.mapActions(header, data)
	case KindActors:
		batch.Actors = im.mapActors(header, data)
	case KindAssets:
		batch.Assets = im.mapAssets(header, data)
	case KindConnections:
		batch.Connections = im.mapConnections(header, data)
	default:
		return im.failed(kind, fmt.Errorf("%w: %q", ErrInvalidKind, kind))
	}

	im.log().WithFields(logrus.Fields{"kind": kind, "count": batch.Len()}).Info("import succeeded")
	return Outcome{
		Success: true,
		Message: fmt.Sprintf("Successfully imported %d %s", batch.Len(), kind),
		Batch:   batch,
	}
}

func (im Importer) failed(kind Kind, err error) Outcome {
	im.log().WithFields(logrus.Fields{"kind": kind, "error": err}).Warn("import failed")
	return Outcome{
		Success: false,
		Message: fmt.Sprintf("Import failed: %s", err),
		Errors:  []string{err.Error()},
	}
}
