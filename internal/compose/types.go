package compose

// VolumeKind distinguishes the two spellings of a service volume.
type VolumeKind int

const (
	// VolumeShort is the "source:target[:options]" string form.
	VolumeShort VolumeKind = iota
	// VolumeStructured is the {type, source, target, ...} mapping form.
	VolumeStructured
)

// Volume is a service volume normalized to a (source, target) pair.
type Volume struct {
	Kind VolumeKind
	// Raw is the original string for short-form volumes.
	Raw string
	// Type is the structured-form type ("bind", "volume", "tmpfs", ...).
	Type   string
	Source string
	Target string
	// HasSource is false when a structured volume has no source key.
	HasSource bool
}

// IsBind reports whether the volume mounts a host path.
// Structured volumes say so explicitly; short-form volumes are bind mounts
// when their source looks like a path rather than a volume name.
func (v Volume) IsBind() bool {
	if v.Kind == VolumeStructured {
		return v.Type == "bind"
	}
	return isHostPath(v.Source)
}

// ConfigRef is a service's reference to a top-level config.
type ConfigRef struct {
	// Short is set when the reference was a bare config name.
	Short  bool
	Source string
	Target string
}

// Service is the validated subset of a service definition.
type Service struct {
	Name    string
	Image   string
	Volumes []Volume
	Configs []ConfigRef
	// Labels holds deploy.labels with every value rendered as a string.
	Labels map[string]string
	// Extra keeps every field of the service as parsed.
	Extra map[string]any
}

// Document is a compose document that passed the schema.
type Document struct {
	// Services is sorted by name.
	Services []*Service
	// Configs holds the top-level configs mapping as parsed.
	Configs map[string]any
	// Env holds x-zane-env.
	Env map[string]any
	// Extra keeps every top-level field as parsed.
	Extra map[string]any
}

// Service returns the service called name.
func (d *Document) Service(name string) (*Service, bool) {
	for _, s := range d.Services {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}
