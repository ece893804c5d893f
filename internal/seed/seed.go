// Package seed drives the seeding phases against the school server:
// class creation, leadership assignment, and the master-data patch.
//
// Each phase runs strictly sequentially. External calls are independent
// per item; a single item's failure is counted and logged but never
// aborts the batch. Whole-run failures are limited to configuration
// problems (no matching template, empty template) and failures of the
// reads a phase cannot start without.
package seed

import (
	"context"
	"io"
	"math/rand"
	"os"

	"github.com/conn-castle/mockfactory/internal/structure"
	"github.com/conn-castle/mockfactory/internal/svws"
)

// ServerClient is the school-server surface the driver depends on.
// *svws.Client implements it; tests substitute fakes.
type ServerClient interface {
	Stammdaten(ctx context.Context) (*svws.Stammdaten, error)
	PatchStammdaten(ctx context.Context, patch svws.SchoolPatch) error
	Jahrgaenge(ctx context.Context) ([]svws.Jahrgang, error)
	Lehrer(ctx context.Context) ([]svws.Lehrer, error)
	CreateKlasse(ctx context.Context, klasse svws.KlasseCreate) (int64, error)
	PatchKlassenleitungen(ctx context.Context, klasseID int64, staffIDs []int64) error
}

// Options configures one seeding run.
type Options struct {
	TotalStudents   int
	TargetClassSize int
	CachePath       string
	// Catalog is the class structure catalog; the embedded default when
	// nil.
	Catalog *structure.Catalog
	// Rand drives the leadership selection. Injected so reruns and tests
	// can fix outcomes.
	Rand *rand.Rand
	// Out receives progress lines; os.Stdout when nil.
	Out io.Writer
}

// Report is the aggregate outcome of one phase.
type Report struct {
	Created int
	Failed  int
	// SkippedGrades counts grade levels left out because the server
	// directory has no entry for them.
	SkippedGrades int
	// SkippedSchool is set when the school form requires unmodeled
	// specialized-class data and the phase did nothing at all.
	SkippedSchool bool
}

// Runner executes seeding phases over one server client.
type Runner struct {
	client ServerClient
	opts   Options
	out    io.Writer
}

// NewRunner builds a runner. The catalog falls back to the embedded
// default and output to os.Stdout.
func NewRunner(client ServerClient, opts Options) (*Runner, error) {
	if opts.Catalog == nil {
		catalog, err := structure.Default()
		if err != nil {
			return nil, err
		}
		opts.Catalog = catalog
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}
	return &Runner{client: client, opts: opts, out: out}, nil
}
