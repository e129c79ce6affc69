package app

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"go.trai.ch/commons/convert"
	"go.trai.ch/commons/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// ConvertOptions configures a conversion run.
type ConvertOptions struct {
	// Target is the format outputs are written in.
	Target convert.Format
	// OutDir receives the outputs. Empty writes each output next to its input.
	OutDir string
	// Force converts inputs even when their stored record is up to date.
	Force bool
}

// FileFingerprint is the content fingerprint of one document.
type FileFingerprint struct {
	Path        string
	Fingerprint string
}

// ConvertFiles converts every document matched by inputs to opts.Target.
// Documents run concurrently; the first failure cancels the rest.
func (a *App) ConvertFiles(ctx context.Context, inputs []string, opts ConvertOptions) error {
	if len(inputs) == 0 {
		return domain.ErrNoInputs
	}
	if _, err := convert.ParseFormat(string(opts.Target)); err != nil {
		return err
	}

	paths, err := a.resolver.ResolveInputs(inputs)
	if err != nil {
		return err
	}

	outputs := make(map[string]string, len(paths))
	for _, path := range paths {
		output := outputPath(path, opts)
		if prev, ok := outputs[output]; ok {
			err := zerr.With(domain.ErrOutputCollision, "output", output)
			return zerr.With(zerr.With(err, "first", prev), "second", path)
		}
		outputs[output] = path
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for output, path := range outputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := a.convertOne(path, output, opts); err != nil {
				return zerr.With(zerr.Wrap(err, domain.ErrConversionFailed.Error()), "path", path)
			}
			return nil
		})
	}

	return g.Wait()
}

func (a *App) convertOne(path, output string, opts ConvertOptions) error {
	if filepath.Clean(path) == filepath.Clean(output) {
		return zerr.With(domain.ErrSameInputOutput, "path", path)
	}

	doc, err := a.documents.Read(path)
	if err != nil {
		return err
	}

	fingerprint, err := convert.FingerprintBytes(doc.Data, doc.Format)
	if err != nil {
		return err
	}

	if !opts.Force {
		rec, err := a.records.Get(path)
		if err != nil {
			return err
		}
		if rec.UpToDate(fingerprint, output, opts.Target) && a.documents.Exists(output) {
			a.logger.Info(fmt.Sprintf("%s is up to date", output))
			return nil
		}
	}

	data, err := convert.Transcode(doc.Data, doc.Format, opts.Target)
	if err != nil {
		return err
	}

	if err := a.documents.Write(&domain.Document{Path: output, Format: opts.Target, Data: data}); err != nil {
		return err
	}

	if err := a.records.Put(domain.ConversionRecord{
		Path:        path,
		Fingerprint: fingerprint,
		Output:      output,
		Format:      opts.Target,
		Timestamp:   a.now(),
	}); err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("converted %s -> %s", path, output))
	return nil
}

// outputPath swaps the extension of path for the target format and moves it
// into opts.OutDir when set.
func outputPath(path string, opts ConvertOptions) string {
	out := strings.TrimSuffix(path, filepath.Ext(path)) + opts.Target.Ext()
	if opts.OutDir != "" {
		out = filepath.Join(opts.OutDir, filepath.Base(out))
	}
	return out
}

// Fingerprint returns the content fingerprint of every document matched by
// inputs, in path order.
func (a *App) Fingerprint(inputs []string) ([]FileFingerprint, error) {
	if len(inputs) == 0 {
		return nil, domain.ErrNoInputs
	}

	paths, err := a.resolver.ResolveInputs(inputs)
	if err != nil {
		return nil, err
	}

	out := make([]FileFingerprint, 0, len(paths))
	for _, path := range paths {
		doc, err := a.documents.Read(path)
		if err != nil {
			return nil, err
		}
		sum, err := convert.FingerprintBytes(doc.Data, doc.Format)
		if err != nil {
			return nil, zerr.With(err, "path", path)
		}
		out = append(out, FileFingerprint{Path: path, Fingerprint: sum})
	}
	return out, nil
}
