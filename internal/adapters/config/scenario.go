package config

import (
	"go.trai.ch/graphcache/internal/adapters/wire"
	"go.trai.ch/graphcache/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// enumTag marks a scalar as an enum value, e.g. `episode: !enum JEDI`.
	enumTag = "!enum"
	// setTag marks a patch entry that replaces the slot value, e.g. `name: !set Artoo`.
	setTag = "!set"
)

// LoadScenario reads the scenario at path, compiles its selections and validates every step.
func (l *Loader) LoadScenario(path string) (*domain.Scenario, error) {
	var file ScenarioFile
	if err := readAndUnmarshalYAML(path, &file, domain.ErrScenarioReadFailed, domain.ErrScenarioParseFailed); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	sc := &domain.Scenario{
		Path:       path,
		Selections: make(map[string]*domain.Selection, len(file.Selections)),
		Steps:      make([]domain.Step, 0, len(file.Steps)),
	}
	for name, text := range file.Selections {
		sel, err := l.Compiler.Compile(text)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to compile selection"), "selection", name)
		}
		sc.Selections[name] = sel
	}

	p := stepParser{selections: sc.Selections, watches: make(map[string]bool)}
	for i := range file.Steps {
		step, err := p.parse(&file.Steps[i])
		if err != nil {
			return nil, zerr.With(err, "path", path)
		}
		sc.Steps = append(sc.Steps, step)
	}

	l.Logger.Debug("scenario loaded", "path", path, "steps", len(sc.Steps), "selections", len(sc.Selections))
	return sc, nil
}

type stepParser struct {
	selections map[string]*domain.Selection
	watches    map[string]bool
}

func (p *stepParser) parse(n *yaml.Node) (domain.Step, error) {
	step := domain.Step{Line: n.Line}
	var dto StepDTO

	switch {
	case n.Kind == yaml.ScalarNode:
		// Bare operations such as `- clear` take no arguments.
		step.Kind = domain.StepKind(n.Value)
	case n.Kind == yaml.MappingNode && len(n.Content) == 2:
		step.Kind = domain.StepKind(n.Content[0].Value)
		if body := n.Content[1]; body.ShortTag() != "!!null" {
			if err := body.Decode(&dto); err != nil {
				return domain.Step{}, zerr.With(zerr.Wrap(err, domain.ErrInvalidStep.Error()), "line", n.Line)
			}
		}
	default:
		return domain.Step{}, stepError("a step is a mapping with exactly one operation", n.Line, "")
	}

	var err error
	switch step.Kind {
	case domain.StepListen:
		err = p.listen(&step, &dto)
	case domain.StepCancel:
		err = p.cancel(&step, &dto)
	case domain.StepMergeQuery, domain.StepMergeMutation:
		err = p.merge(&step, &dto)
	case domain.StepLookup:
		err = p.selection(&step, &dto)
	case domain.StepUpdate:
		err = p.update(&step, &dto)
	case domain.StepClear, domain.StepDump:
	default:
		err = stepError("unknown operation", n.Line, step.Kind)
	}
	if err != nil {
		return domain.Step{}, err
	}
	return step, nil
}

func (p *stepParser) listen(step *domain.Step, dto *StepDTO) error {
	if dto.Watch == "" {
		return stepError("listen requires a watch name", step.Line, step.Kind)
	}
	if p.watches[dto.Watch] {
		return zerr.With(stepError("watch registered twice", step.Line, step.Kind), "watch", dto.Watch)
	}
	if err := p.selection(step, dto); err != nil {
		return err
	}

	step.Root = domain.RootKey
	if dto.Root != "" {
		root, err := domain.ParseCacheKey(dto.Root)
		if err != nil {
			return zerr.With(err, "line", step.Line)
		}
		step.Root = root
	}

	p.watches[dto.Watch] = true
	step.Watch = dto.Watch
	return nil
}

func (p *stepParser) cancel(step *domain.Step, dto *StepDTO) error {
	if !p.watches[dto.Watch] {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrUnknownWatch, "cancel of a watch never registered"), "watch", dto.Watch), "line", step.Line)
	}
	step.Watch = dto.Watch
	return nil
}

func (p *stepParser) selection(step *domain.Step, dto *StepDTO) error {
	if _, ok := p.selections[dto.Selection]; !ok {
		return zerr.With(zerr.With(zerr.Wrap(domain.ErrUnknownSelection, "step refers to an undefined selection"), "selection", dto.Selection), "line", step.Line)
	}
	step.Selection = dto.Selection
	return nil
}

func (p *stepParser) merge(step *domain.Step, dto *StepDTO) error {
	if err := p.selection(step, dto); err != nil {
		return err
	}

	hasData := dto.Data.Kind != 0
	switch {
	case hasData && dto.JSON != "":
		return stepError("data and json are mutually exclusive", step.Line, step.Kind)
	case dto.JSON != "":
		obj, err := wire.DecodeObject([]byte(dto.JSON))
		if err != nil {
			return zerr.With(err, "line", step.Line)
		}
		step.Data = obj
	case hasData:
		v, err := valueFromNode(&dto.Data)
		if err != nil {
			return err
		}
		obj, ok := v.(domain.Object)
		if !ok {
			return zerr.With(zerr.Wrap(domain.ErrPayloadNotObject, "merge data must be a mapping"), "line", step.Line)
		}
		step.Data = obj
	default:
		return stepError("merge requires data or json", step.Line, step.Kind)
	}
	return nil
}

func (p *stepParser) update(step *domain.Step, dto *StepDTO) error {
	key, err := domain.ParseCacheKey(dto.Key)
	if err != nil {
		return zerr.With(err, "line", step.Line)
	}
	if dto.Patch.Kind == 0 {
		return stepError("update requires a patch", step.Line, step.Kind)
	}
	patch, err := patchFromNode(&dto.Patch)
	if err != nil {
		return err
	}
	step.Key = key
	step.Patch = patch
	return nil
}

func stepError(msg string, line int, kind domain.StepKind) error {
	err := zerr.With(zerr.Wrap(domain.ErrInvalidStep, msg), "line", line)
	if kind != "" {
		err = zerr.With(err, "step", string(kind))
	}
	return err
}

// valueFromNode converts a YAML node into a response value. Scalars keep their resolved YAML
// type; the !enum tag produces an Enum.
func valueFromNode(n *yaml.Node) (domain.Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return domain.Null{}, nil
		}
		return valueFromNode(n.Content[0])
	case yaml.AliasNode:
		return valueFromNode(n.Alias)
	case yaml.SequenceNode:
		out := make(domain.List, len(n.Content))
		for i, c := range n.Content {
			v, err := valueFromNode(c)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case yaml.MappingNode:
		out := make(domain.Object, len(n.Content)/2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			v, err := valueFromNode(n.Content[i+1])
			if err != nil {
				return nil, err
			}
			out[n.Content[i].Value] = v
		}
		return out, nil
	case yaml.ScalarNode:
		return scalarFromNode(n)
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrScenarioParseFailed, "unsupported YAML node"), "line", n.Line)
	}
}

func scalarFromNode(n *yaml.Node) (domain.Value, error) {
	switch n.ShortTag() {
	case "!!null":
		return domain.Null{}, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrScenarioParseFailed.Error()), "line", n.Line)
		}
		return domain.Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrScenarioParseFailed.Error()), "line", n.Line)
		}
		return domain.Int(i), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrScenarioParseFailed.Error()), "line", n.Line)
		}
		return domain.Float(f), nil
	case enumTag:
		return domain.Enum(n.Value), nil
	case "!!str", "!!timestamp", "!!binary":
		return domain.String(n.Value), nil
	default:
		return nil, zerr.With(zerr.With(zerr.Wrap(domain.ErrScenarioParseFailed, "unsupported tag"), "tag", n.Tag), "line", n.Line)
	}
}

// patchFromNode converts a YAML patch. A mapping patches the named fields; a node tagged !set
// replaces the slot with its value.
func patchFromNode(n *yaml.Node) (domain.Patch, error) {
	if n.Kind == yaml.AliasNode {
		return patchFromNode(n.Alias)
	}

	if n.Tag == setTag {
		untagged := *n
		untagged.Tag = ""
		v, err := valueFromNode(&untagged)
		if err != nil {
			return nil, err
		}
		cv, err := wire.ToCacheValue(v)
		if err != nil {
			return nil, zerr.With(err, "line", n.Line)
		}
		return domain.Set(cv), nil
	}

	if n.Kind != yaml.MappingNode {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidStep, "patch entries are mappings or !set values"), "line", n.Line)
	}

	out := make(domain.FieldPatch, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		sub, err := patchFromNode(n.Content[i+1])
		if err != nil {
			return nil, err
		}
		out[n.Content[i].Value] = sub
	}
	return out, nil
}
