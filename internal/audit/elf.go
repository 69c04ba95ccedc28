package audit

import (
	"debug/elf"
	"io"
	"sort"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// ScanELF audits every function in the ELF binary r whose name
// matches opts.Match.
func ScanELF(r io.ReaderAt, opts Options) (*Report, error) {
	log := opts.logger()

	f, err := elf.NewFile(r)
	if err != nil {
		return nil, errors.Wrap(err, "parsing ELF file")
	}
	defer f.Close()

	var arch Arch
	switch f.Machine {
	case elf.EM_X86_64:
		arch = AMD64
	case elf.EM_AARCH64:
		arch = ARM64
	default:
		return nil, errors.Errorf("unsupported machine %s", f.Machine)
	}

	text := f.Section(".text")
	if text == nil {
		return nil, errors.New("no .text section")
	}
	data, err := text.Data()
	if err != nil {
		return nil, errors.Wrap(err, "reading .text")
	}

	syms, err := f.Symbols()
	if err != nil {
		return nil, errors.Wrap(err, "reading symbol table")
	}
	sort.Slice(syms, func(i, j int) bool {
		return syms[i].Name < syms[j].Name
	})

	report := &Report{Arch: arch}
	for _, s := range syms {
		if elf.ST_TYPE(s.Info) != elf.STT_FUNC || s.Size == 0 {
			continue
		}
		if !opts.match(s.Name) {
			continue
		}
		if s.Value < text.Addr || s.Value+s.Size > text.Addr+uint64(len(data)) {
			log.Debug("symbol outside .text", zap.String("symbol", s.Name))
			continue
		}
		start := s.Value - text.Addr
		code := data[start : start+s.Size]

		fs, err := ScanCode(arch, s.Name, s.Value, code, opts)
		if err != nil {
			return nil, err
		}
		log.Debug("audited", zap.String("symbol", s.Name),
			zap.Uint64("size", s.Size), zap.Int("findings", len(fs)))
		report.Symbols = append(report.Symbols, s.Name)
		report.Findings = append(report.Findings, fs...)
	}
	sortFindings(report.Findings)

	log.Info("audit complete",
		zap.Stringer("arch", arch),
		zap.Int("symbols", len(report.Symbols)),
		zap.Int("findings", len(report.Findings)))
	return report, nil
}
