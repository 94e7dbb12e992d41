package catalogue

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/adamwrona/rezydent/internal/domain"
)

// ErrProgramNotFound is returned when no requirement document exists for a
// (program code, version) pair.
var ErrProgramNotFound = errors.New("program requirements not found")

// Source provides parsed program requirement trees.
type Source interface {
	Program(programCode string, version domain.SMKVersion) (*Program, error)
}

// Loader reads program requirement documents from a directory. Files are
// named <program_code>_<version>.json, e.g. cardiology_old.json. Each
// document is parsed at most once and cached for the process lifetime;
// requirement trees are immutable reference data.
type Loader struct {
	dir string

	mu    sync.Mutex
	cache map[string]*Program
}

// NewLoader creates a Loader over the given catalogue directory.
func NewLoader(dir string) *Loader {
	return &Loader{dir: dir, cache: make(map[string]*Program)}
}

func (l *Loader) Program(programCode string, version domain.SMKVersion) (*Program, error) {
	key := programCode + "_" + string(version)

	l.mu.Lock()
	defer l.mu.Unlock()

	if p, ok := l.cache[key]; ok {
		return p, nil
	}

	path := filepath.Join(l.dir, key+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("program %s (%s): %w", programCode, version, ErrProgramNotFound)
		}
		return nil, fmt.Errorf("reading program document %s: %w", path, err)
	}

	var program Program
	if err := json.Unmarshal(data, &program); err != nil {
		return nil, fmt.Errorf("parsing program document %s: %w", path, err)
	}
	if err := validateProgram(&program); err != nil {
		return nil, fmt.Errorf("invalid program document %s: %w", path, err)
	}

	l.cache[key] = &program
	return &program, nil
}

// List returns the (code, version) pairs available in the catalogue
// directory, in filename order.
func (l *Loader) List() ([]string, error) {
	files, err := filepath.Glob(filepath.Join(l.dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("listing catalogue directory: %w", err)
	}
	stems := make([]string, 0, len(files))
	for _, f := range files {
		base := filepath.Base(f)
		stems = append(stems, base[:len(base)-len(filepath.Ext(base))])
	}
	return stems, nil
}

func validateProgram(p *Program) error {
	if p.ProgramCode == "" {
		return fmt.Errorf("program_code is required")
	}
	if !domain.ValidSMKVersions[string(p.SMKVersion)] {
		return fmt.Errorf("smk_version %q is not one of old, new", p.SMKVersion)
	}
	seen := make(map[string]bool, len(p.Modules))
	for _, m := range p.Modules {
		if m.ModuleID == "" {
			return fmt.Errorf("module without module_id")
		}
		if seen[m.ModuleID] {
			return fmt.Errorf("duplicate module_id %q", m.ModuleID)
		}
		seen[m.ModuleID] = true
		if m.Type != domain.ModuleBasic && m.Type != domain.ModuleSpecialistic {
			return fmt.Errorf("module %s: type %q is not one of basic, specialistic", m.ModuleID, m.Type)
		}
		for _, i := range m.Internships {
			if i.Name == "" {
				return fmt.Errorf("module %s: internship requirement without name", m.ModuleID)
			}
			if i.WorkingDays < 0 {
				return fmt.Errorf("module %s: internship %q has negative working days", m.ModuleID, i.Name)
			}
		}
		for _, pr := range m.Procedures {
			if pr.RequiredAsOperator < 0 || pr.RequiredAsAssistant < 0 {
				return fmt.Errorf("module %s: procedure %q has negative required counts", m.ModuleID, pr.Code)
			}
		}
	}
	return nil
}
