// Package opc builds the test source tree into OPC (zip) packages.
//
// Directories are interpreted by their suffixes:
//
//	<name>.3mf         zipped as is into <name>.3mf
//	<name>.3mf_models  one <id>.3mf per <id>.model, placed at 3D/3dmodel.model
//	<name>.3mf_rels    one <id>.3mf per <id>.rels, placed at _rels/.rels
//	<name>.ignore      skipped
//
// The models and rels variants use the folder's skeleton/ directory for all
// other parts. Directories without a suffix are descended into; plain files
// are copied.
package opc

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
)

const skeletonDir = "skeleton"

// Report lists the files Build produced and how they compare to the
// destination tree afterwards.
type Report struct {
	Reported []string
	// Missing were reported but do not exist.
	Missing []string
	// Unexpected exist but were not reported.
	Unexpected []string
	// Failed holds the outputs that could not be written.
	Failed map[string]error
}

// Err joins the failures in path order, or returns nil.
func (r Report) Err() error {
	paths := make([]string, 0, len(r.Failed))
	for p := range r.Failed {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	errs := make([]error, 0, len(paths))
	for _, p := range paths {
		errs = append(errs, fmt.Errorf("%s: %w", p, r.Failed[p]))
	}
	return errors.Join(errs...)
}

// Clean reports whether the destination matches the reported files.
func (r Report) Clean() bool {
	return len(r.Missing) == 0 && len(r.Unexpected) == 0 && len(r.Failed) == 0
}

// Build removes dstDir and rebuilds it from srcDir. A file that cannot be
// copied or packaged is recorded in the report and the build goes on; the
// returned error then joins every such failure.
func Build(srcDir, dstDir string) (Report, error) {
	report := Report{Failed: make(map[string]error)}
	if err := os.RemoveAll(dstDir); err != nil {
		return report, fmt.Errorf("clean %s: %w", dstDir, err)
	}

	b := builder{src: srcDir, dst: dstDir, report: &report}
	if err := b.level(""); err != nil {
		return report, err
	}

	actual, err := listFiles(dstDir)
	if err != nil {
		return report, err
	}
	report.Missing, report.Unexpected = diff(report.Reported, actual)
	return report, report.Err()
}

type builder struct {
	src, dst string
	report   *Report
}

func (b builder) level(rel string) error {
	srcPath := filepath.Join(b.src, rel)
	dstPath := filepath.Join(b.dst, rel)
	if err := os.MkdirAll(dstPath, 0755); err != nil {
		return fmt.Errorf("create %s: %w", dstPath, err)
	}

	entries, err := os.ReadDir(srcPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", srcPath, err)
	}
	for _, e := range entries {
		entryPath := filepath.Join(srcPath, e.Name())
		if !e.IsDir() {
			out := filepath.Join(dstPath, e.Name())
			b.report.Reported = append(b.report.Reported, out)
			if err := copyFile(entryPath, out); err != nil {
				b.report.Failed[out] = err
			}
			continue
		}

		parts := strings.Split(e.Name(), ".")
		if len(parts) == 1 {
			if err := b.level(filepath.Join(rel, e.Name())); err != nil {
				return err
			}
			continue
		}
		for _, filetype := range parts[1:] {
			if err := b.folder(filetype, entryPath, parts[0], dstPath); err != nil {
				return err
			}
		}
	}
	return nil
}

func (b builder) folder(filetype, srcPath, name, dstPath string) error {
	switch filetype {
	case "3mf":
		parts, err := readTree(srcPath)
		if err != nil {
			return err
		}
		b.archive(filepath.Join(dstPath, name+".3mf"), parts)

	case "3mf_models", "3mf_rels":
		ext, target := ".model", "3D/3dmodel.model"
		if filetype == "3mf_rels" {
			ext, target = ".rels", "_rels/.rels"
		}

		skeleton, err := readTree(filepath.Join(srcPath, skeletonDir))
		if os.IsNotExist(err) {
			skeleton = defaultSkeleton()
		} else if err != nil {
			return err
		}
		delete(skeleton, target)

		entries, err := os.ReadDir(srcPath)
		if err != nil {
			return fmt.Errorf("read %s: %w", srcPath, err)
		}
		outDir := filepath.Join(dstPath, name)
		if err := os.MkdirAll(outDir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", outDir, err)
		}
		for _, e := range entries {
			if e.IsDir() || filepath.Ext(e.Name()) != ext {
				continue
			}
			content, err := os.ReadFile(filepath.Join(srcPath, e.Name()))
			if err != nil {
				return fmt.Errorf("read %s: %w", e.Name(), err)
			}
			parts := make(map[string][]byte, len(skeleton)+1)
			for k, v := range skeleton {
				parts[k] = v
			}
			parts[target] = content
			b.archive(filepath.Join(outDir, strings.TrimSuffix(e.Name(), ext)+".3mf"), parts)
		}
	}
	return nil
}

// archive writes one package. Failures are recorded, not returned, so the
// remaining packages are still built.
func (b builder) archive(out string, parts map[string][]byte) {
	b.report.Reported = append(b.report.Reported, out)
	if err := WritePackage(out, parts); err != nil {
		b.report.Failed[out] = err
	}
}

var createFile = os.Create

// WritePackage writes parts, keyed by slash separated part name, into a new
// zip file at out. Parts are written in name order. On failure no file is
// left at out.
func WritePackage(out string, parts map[string][]byte) (err error) {
	f, err := createFile(out)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(out)
		}
	}()
	return writeZip(f, parts)
}

func writeZip(dst io.Writer, parts map[string][]byte) error {
	zw := zip.NewWriter(dst)
	names := make([]string, 0, len(parts))
	for name := range parts {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
		if err != nil {
			return fmt.Errorf("add %s: %w", name, err)
		}
		if _, err := w.Write(parts[name]); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return zw.Close()
}

// ReadPackage returns the parts of a package keyed by part name.
func ReadPackage(path string) (map[string][]byte, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer zr.Close()

	parts := make(map[string][]byte, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", f.Name, err)
		}
		parts[f.Name] = data
	}
	return parts, nil
}

// readTree reads every file below dir keyed by its slash separated path
// relative to dir.
func readTree(dir string) (map[string][]byte, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}
	parts := make(map[string][]byte)
	err := fs.WalkDir(os.DirFS(dir), ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(p)))
		if err != nil {
			return err
		}
		parts[path.Clean(p)] = data
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", dir, err)
	}
	return parts, nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read %s: %w", src, err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		os.Remove(dst)
		return fmt.Errorf("write %s: %w", dst, err)
	}
	return nil
}

func listFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}
	return files, nil
}

func diff(reported, actual []string) (missing, unexpected []string) {
	have := make(map[string]bool, len(actual))
	for _, p := range actual {
		have[p] = true
	}
	want := make(map[string]bool, len(reported))
	for _, p := range reported {
		want[p] = true
		if !have[p] {
			missing = append(missing, p)
		}
	}
	for _, p := range actual {
		if !want[p] {
			unexpected = append(unexpected, p)
		}
	}
	slices.Sort(missing)
	slices.Sort(unexpected)
	return missing, unexpected
}
