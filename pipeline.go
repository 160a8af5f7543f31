package iconrez

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/bodgit/iconrez/rez"
)

// DefaultID is the resource ID conventionally used for an application
// or document icon family.
const DefaultID = 128

const workers = 3

// EmitOptions control the emitted document.
type EmitOptions struct {
	// ID is the resource ID shared by all six blocks.
	ID int16

	// Name is the optional resource name shared by all six blocks.
	Name string

	Options
}

func validateInputs(inputs map[Role]string) error {
	if len(inputs) != int(numRoles) {
		return fmt.Errorf("expected %d images, got %d", numRoles, len(inputs))
	}
	for _, role := range Roles() {
		if _, ok := inputs[role]; !ok {
			return fmt.Errorf("missing %s image", role)
		}
	}
	return nil
}

func (m *IconRez) roleSource(ctx context.Context) <-chan Role {
	out := make(chan Role)
	go func() {
		defer close(out)
		for _, role := range Roles() {
			select {
			case out <- role:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

func (m *IconRez) quantizeWorker(cancel context.CancelFunc, inputs map[Role]string, opts Options, in <-chan Role, icons []*QuantizedIcon) <-chan error {
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		for role := range in {
			src, err := load(role, inputs[role])
			if err != nil {
				errc <- err
				cancel()
				return
			}

			q, err := quantize(src, opts)
			if err != nil {
				errc <- err
				cancel()
				return
			}
			m.logger.Printf("quantized %s from %s\n", role, src.Path)

			// Each worker only ever writes the slots for the roles it
			// consumed, so no locking is needed
			icons[role] = q
		}
	}()
	return errc
}

func waitForPipeline(errs ...<-chan error) error {
	errc := mergeErrors(errs...)
	for err := range errc {
		if err != nil {
			return err
		}
	}
	return nil
}

func mergeErrors(cs ...<-chan error) <-chan error {
	var wg sync.WaitGroup
	out := make(chan error, len(cs))
	wg.Add(len(cs))
	for _, c := range cs {
		go func(c <-chan error) {
			for n := range c {
				out <- n
			}
			wg.Done()
		}(c)
	}
	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

func (m *IconRez) quantizeAll(inputs map[Role]string, opts Options) ([]*QuantizedIcon, error) {
	if err := validateInputs(inputs); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	icons := make([]*QuantizedIcon, numRoles)

	roles := m.roleSource(ctx)

	var errcList []<-chan error
	for i := 0; i < workers; i++ {
		errcList = append(errcList, m.quantizeWorker(cancel, inputs, opts, roles, icons))
	}

	if err := waitForPipeline(errcList...); err != nil {
		return nil, err
	}

	return icons, nil
}

// Emit runs the full pipeline: load and quantize the six sources, then
// render the resource document. The document is returned rather than
// streamed so a failure can never leave partial output behind.
func (m *IconRez) Emit(inputs map[Role]string, opts EmitOptions) ([]byte, error) {
	icons, err := m.quantizeAll(inputs, opts.Options)
	if err != nil {
		return nil, err
	}

	// icons is already in emission order
	blocks := make([]rez.Block, 0, numRoles)
	for _, q := range icons {
		block, err := q.block(opts.ID, opts.Name)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}

	b := new(bytes.Buffer)
	if err := rez.Encode(b, blocks); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

// EmitFile writes the document for the six inputs to path with a
// single write; on error no file is created.
func (m *IconRez) EmitFile(path string, inputs map[Role]string, opts EmitOptions) error {
	b, err := m.Emit(inputs, opts)
	if err != nil {
		return err
	}

	m.logger.Printf("writing %d bytes to %s\n", len(b), path)

	return os.WriteFile(path, b, 0644)
}
