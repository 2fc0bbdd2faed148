package fits

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DataDog/zstd"
)

// writeTestFile writes a primary unit followed by one table per name.
// Each table holds WAVELENGTH and FLUX columns.
func writeTestFile(t *testing.T, path string, names ...string) {
	t.Helper()

	w, err := Create(path)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := w.WritePrimary(
		Card{Name: "TELESCOP", Value: "JWST"},
		Card{Name: "NINTS", Value: 3, Comment: "number of integrations"},
		Card{Name: "TFRAME", Value: 5.494},
		Card{Name: "SUBARRAY", Value: true},
	); err != nil {
		t.Fatalf("WritePrimary failed: %v", err)
	}
	for i, name := range names {
		cols := []Column{
			{Name: "WAVELENGTH", Unit: "um", Values: []float64{1.0, 1.5, 2.0}},
			{Name: "FLUX", Unit: "Jy", Values: []float64{10, 20, float64(30 + i)}},
		}
		if err := w.WriteTable(name, cols, WithVersion(i+1)); err != nil {
			t.Fatalf("WriteTable(%s) failed: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}

func TestMissingExtensionError(t *testing.T) {
	tests := []struct {
		name string
		err  *MissingExtensionError
		want string
	}{
		{"with path", &MissingExtensionError{Extension: "EXTRACT1D", Path: "a.fits"}, "No 'EXTRACT1D' extension found in a.fits"},
		{"no path", &MissingExtensionError{Extension: "EXTRACT1D"}, "No 'EXTRACT1D' extension found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
			if got := tt.err.Describe(); got != tt.want {
				t.Errorf("Describe() = %q, want %q", got, tt.want)
			}
			if !errors.Is(tt.err, ErrNotFound) {
				t.Error("expected errors.Is(err, ErrNotFound)")
			}
		})
	}
}

func TestOpenPrimaryOnly(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "primary.fits")
	writeTestFile(t, path)

	f, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	if f.NumHDUs() != 1 {
		t.Fatalf("NumHDUs = %d, want 1", f.NumHDUs())
	}
	if f.Size()%2880 != 0 {
		t.Errorf("Size %d is not a multiple of 2880", f.Size())
	}
	if name := f.Primary().Name(); name != "PRIMARY" {
		t.Errorf("primary name = %q, want PRIMARY", name)
	}

	_, err = f.Extension("EXTRACT1D")
	var missing *MissingExtensionError
	if !errors.As(err, &missing) {
		t.Fatalf("expected *MissingExtensionError, got %v", err)
	}
	if missing.Path != path {
		t.Errorf("Path = %q, want %q", missing.Path, path)
	}
	if !strings.Contains(err.Error(), "No 'EXTRACT1D' extension found") {
		t.Errorf("unexpected message %q", err.Error())
	}
	if f.HasExtension("EXTRACT1D") {
		t.Error("HasExtension should be false")
	}
}

func TestExtensionExactMatch(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "names.fits")
	writeTestFile(t, path, "extract1d", "EXTRACT1DX", "SCI_EXTRACT1D")

	f, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	for _, name := range []string{"extract1d", "EXTRACT1DX", "SCI_EXTRACT1D"} {
		if !f.HasExtension(name) {
			t.Errorf("HasExtension(%q) = false", name)
		}
	}
	if _, err := f.Extension("EXTRACT1D"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Extension(EXTRACT1D) err = %v, want ErrNotFound", err)
	}
	if _, err := f.Extensions("EXTRACT1D"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Extensions(EXTRACT1D) err = %v, want ErrNotFound", err)
	}
}

func TestExtensionsInOrder(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "multi.fits")
	writeTestFile(t, path, "EXTRACT1D", "INT_TIMES", "EXTRACT1D", "EXTRACT1D")

	f, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	exts, err := f.Extensions("EXTRACT1D")
	if err != nil {
		t.Fatalf("Extensions failed: %v", err)
	}
	wantIdx := []int{1, 3, 4}
	wantVer := []int{1, 3, 4}
	if len(exts) != len(wantIdx) {
		t.Fatalf("got %d extensions, want %d", len(exts), len(wantIdx))
	}
	for i, ext := range exts {
		if ext.Index() != wantIdx[i] {
			t.Errorf("ext %d index = %d, want %d", i, ext.Index(), wantIdx[i])
		}
		if ext.Version() != wantVer[i] {
			t.Errorf("ext %d version = %d, want %d", i, ext.Version(), wantVer[i])
		}
		if ext.Kind() != KindBinaryTable {
			t.Errorf("ext %d kind = %v, want BINTABLE", i, ext.Kind())
		}
	}

	ext, err := f.ExtensionVersion("EXTRACT1D", 3)
	if err != nil {
		t.Fatalf("ExtensionVersion failed: %v", err)
	}
	if ext.Index() != 3 {
		t.Errorf("ExtensionVersion index = %d, want 3", ext.Index())
	}
	if _, err := f.ExtensionVersion("EXTRACT1D", 2); !errors.Is(err, ErrNotFound) {
		t.Errorf("ExtensionVersion(2) err = %v, want ErrNotFound", err)
	}

	names := f.Names()
	want := []string{"PRIMARY", "EXTRACT1D", "INT_TIMES", "EXTRACT1D", "EXTRACT1D"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("Names = %v, want %v", names, want)
	}
}

func TestHeaderAccessors(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "header.fits")
	writeTestFile(t, path)

	f, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	hdr := f.PrimaryHeader()
	if s, err := hdr.String("TELESCOP"); err != nil || s != "JWST" {
		t.Errorf("String(TELESCOP) = %q, %v", s, err)
	}
	if n, err := hdr.Int("NINTS"); err != nil || n != 3 {
		t.Errorf("Int(NINTS) = %d, %v", n, err)
	}
	if v, err := hdr.Float("NINTS"); err != nil || v != 3 {
		t.Errorf("Float(NINTS) = %v, %v", v, err)
	}
	if v, err := hdr.Float("TFRAME"); err != nil || math.Abs(v-5.494) > 1e-12 {
		t.Errorf("Float(TFRAME) = %v, %v", v, err)
	}
	if b, err := hdr.Bool("SUBARRAY"); err != nil || !b {
		t.Errorf("Bool(SUBARRAY) = %v, %v", b, err)
	}
	if c := hdr.Comment("NINTS"); c != "number of integrations" {
		t.Errorf("Comment(NINTS) = %q", c)
	}

	if _, err := hdr.Int("MISSING"); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Int(MISSING) err = %v, want ErrKeyNotFound", err)
	}
	if _, err := hdr.Int("TELESCOP"); !errors.Is(err, ErrKeyType) {
		t.Errorf("Int(TELESCOP) err = %v, want ErrKeyType", err)
	}
	if _, err := hdr.Bool("NINTS"); !errors.Is(err, ErrKeyType) {
		t.Errorf("Bool(NINTS) err = %v, want ErrKeyType", err)
	}

	scalars := hdr.Scalars()
	if scalars["TELESCOP"] != "JWST" {
		t.Errorf("Scalars[TELESCOP] = %v", scalars["TELESCOP"])
	}
	if _, ok := scalars["BITPIX"]; ok {
		t.Error("Scalars should skip structural keywords")
	}
}

func TestColumnRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "table.fits")

	wave := []float64{0.6, 0.8000000000000002, 1.1, 2.8}
	flux := []float64{1e-3, math.Pi, -0.5, 12345.678901234567}

	w, err := Create(path)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if err := w.WritePrimary(); err != nil {
		t.Fatalf("WritePrimary failed: %v", err)
	}
	err = w.WriteTable("EXTRACT1D", []Column{
		{Name: "WAVELENGTH", Unit: "um", Values: wave},
		{Name: "FLUX", Unit: "Jy", Values: flux},
	}, WithCards(Card{Name: "SPORDER", Value: 2}))
	if err != nil {
		t.Fatalf("WriteTable failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	f, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	ext, err := f.Extension("EXTRACT1D")
	if err != nil {
		t.Fatalf("Extension failed: %v", err)
	}
	if !ext.IsTable() {
		t.Fatal("EXTRACT1D should be a table")
	}
	if ext.NumRows() != int64(len(wave)) {
		t.Errorf("NumRows = %d, want %d", ext.NumRows(), len(wave))
	}
	if n, err := ext.Header().Int("SPORDER"); err != nil || n != 2 {
		t.Errorf("SPORDER = %d, %v", n, err)
	}
	if !ext.HasColumn("FLUX") || ext.HasColumn("FLUX_ERROR") {
		t.Errorf("HasColumn mismatch, columns %v", ext.Columns())
	}
	if u := ext.ColumnUnit("WAVELENGTH"); u != "um" {
		t.Errorf("ColumnUnit(WAVELENGTH) = %q, want um", u)
	}

	got, err := ext.Float64Columns("WAVELENGTH", "FLUX")
	if err != nil {
		t.Fatalf("Float64Columns failed: %v", err)
	}
	for i := range wave {
		if got["WAVELENGTH"][i] != wave[i] {
			t.Errorf("WAVELENGTH[%d] = %v, want %v", i, got["WAVELENGTH"][i], wave[i])
		}
		if got["FLUX"][i] != flux[i] {
			t.Errorf("FLUX[%d] = %v, want %v", i, got["FLUX"][i], flux[i])
		}
	}

	if _, err := ext.Float64Column("FLUX_ERROR"); !errors.Is(err, ErrColumnNotFound) {
		t.Errorf("Float64Column(FLUX_ERROR) err = %v, want ErrColumnNotFound", err)
	}
	if _, err := f.Primary().Float64Column("FLUX"); !errors.Is(err, ErrNotTable) {
		t.Errorf("primary Float64Column err = %v, want ErrNotTable", err)
	}
}

func TestWriteTableErrors(t *testing.T) {
	tmpDir := t.TempDir()
	w, err := Create(filepath.Join(tmpDir, "bad.fits"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	defer w.Close()

	cols := []Column{{Name: "A", Values: []float64{1}}}
	if err := w.WriteTable("T", cols); err == nil {
		t.Error("expected error writing a table before the primary unit")
	}
	if err := w.WritePrimary(Card{Name: "BAD", Value: []int{1}}); !errors.Is(err, ErrUnsupported) {
		t.Errorf("WritePrimary with slice value err = %v, want ErrUnsupported", err)
	}
	if err := w.WritePrimary(); err != nil {
		t.Fatalf("WritePrimary failed: %v", err)
	}
	if err := w.WritePrimary(); err == nil {
		t.Error("expected error writing a second primary unit")
	}
	if err := w.WriteTable("T", nil); err == nil {
		t.Error("expected error for table without columns")
	}
	ragged := []Column{
		{Name: "A", Values: []float64{1, 2}},
		{Name: "B", Values: []float64{1}},
	}
	if err := w.WriteTable("T", ragged); err == nil {
		t.Error("expected error for ragged columns")
	}
}

func TestOpenNotFITS(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "text.fits")
	if err := os.WriteFile(path, []byte(strings.Repeat("not a fits file ", 400)), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	if _, err := Open(path); !errors.Is(err, ErrNotFITS) {
		t.Errorf("Open err = %v, want ErrNotFITS", err)
	}

	// The handle is released, so the file can be removed
	if err := os.Remove(path); err != nil {
		t.Errorf("Remove after failed Open: %v", err)
	}

	if _, err := Open(filepath.Join(tmpDir, "absent.fits")); err == nil {
		t.Error("expected error opening a missing file")
	}
	if _, err := Open(filepath.Join(tmpDir, "x.fits.fz")); !errors.Is(err, ErrUnsupported) {
		t.Errorf("Open(.fz) err = %v, want ErrUnsupported", err)
	}
}

func TestOpenCompressed(t *testing.T) {
	tmpDir := t.TempDir()
	plain := filepath.Join(tmpDir, "plain.fits")
	writeTestFile(t, plain, "EXTRACT1D")

	raw, err := os.ReadFile(plain)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}

	zst, err := zstd.CompressLevel(nil, raw, 1)
	if err != nil {
		t.Fatalf("zstd compress failed: %v", err)
	}
	zpath := filepath.Join(tmpDir, "plain.fits.zst")
	if err := os.WriteFile(zpath, zst, 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	f, err := Open(zpath)
	if err != nil {
		t.Fatalf("Open(.zst) failed: %v", err)
	}
	defer f.Close()

	if f.Codec() != "zstd" {
		t.Errorf("Codec = %q, want zstd", f.Codec())
	}
	if f.Size() != int64(len(raw)) {
		t.Errorf("Size = %d, want %d", f.Size(), len(raw))
	}
	if !f.HasExtension("EXTRACT1D") {
		t.Error("EXTRACT1D missing from decompressed file")
	}
}

func TestCloseIdempotent(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "close.fits")
	writeTestFile(t, path, "EXTRACT1D")

	f, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("first Close failed: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}
	if _, err := f.Extension("EXTRACT1D"); !errors.Is(err, ErrClosed) {
		t.Errorf("Extension after Close err = %v, want ErrClosed", err)
	}
	if err := Walk(f, func(*Extension) error { return nil }); !errors.Is(err, ErrClosed) {
		t.Errorf("Walk after Close err = %v, want ErrClosed", err)
	}
}

func TestHDUIndex(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "index.fits")
	writeTestFile(t, path, "EXTRACT1D", "INT_TIMES")

	f, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	tests := []struct {
		index   int
		want    string
		wantErr error
	}{
		{0, "PRIMARY", nil},
		{2, "INT_TIMES", nil},
		{3, "", ErrNotFound},
		{-1, "", ErrNotFound},
	}
	for _, tt := range tests {
		ext, err := f.HDU(tt.index)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("HDU(%d) err = %v, want %v", tt.index, err, tt.wantErr)
			}
			continue
		}
		if err != nil {
			t.Fatalf("HDU(%d) failed: %v", tt.index, err)
		}
		if ext.Name() != tt.want || ext.Index() != tt.index {
			t.Errorf("HDU(%d) = %s/%d, want %s", tt.index, ext.Name(), ext.Index(), tt.want)
		}
	}

	if err := f.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if _, err := f.HDU(0); !errors.Is(err, ErrClosed) {
		t.Errorf("HDU after Close err = %v, want ErrClosed", err)
	}
}

func TestWalkAndSummarize(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "walk.fits")
	writeTestFile(t, path, "EXTRACT1D", "INT_TIMES")

	f, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer f.Close()

	var visited []string
	err = Walk(f, func(ext *Extension) error {
		visited = append(visited, ext.Name())
		return nil
	})
	if err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if strings.Join(visited, ",") != "PRIMARY,EXTRACT1D,INT_TIMES" {
		t.Errorf("visited %v", visited)
	}

	stop := errors.New("stop")
	count := 0
	err = Walk(f, func(ext *Extension) error {
		count++
		return stop
	})
	if err != stop || count != 1 {
		t.Errorf("Walk stop: err=%v count=%d", err, count)
	}

	sums, err := Summarize(f)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	if len(sums) != 3 {
		t.Fatalf("got %d summaries, want 3", len(sums))
	}
	if sums[0].Kind != KindImage || sums[0].Rows != 0 {
		t.Errorf("primary summary = %+v", sums[0])
	}
	if sums[1].Kind != KindBinaryTable || sums[1].Rows != 3 || len(sums[1].Columns) != 2 {
		t.Errorf("table summary = %+v", sums[1])
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindImage, "IMAGE"},
		{KindBinaryTable, "BINTABLE"},
		{KindASCIITable, "TABLE"},
		{KindUnknown, "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
