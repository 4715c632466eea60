package compose

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/zaneops/templates/internal/validator"
)

// Top-level keys the schema looks at.
const (
	keyServices = "services"
	keyConfigs  = "configs"
	keyEnv      = "x-zane-env"
)

// Decode applies the loose schema to a parsed compose document.
//
// When any schema issue is found the returned Document is nil and the issues
// describe every problem, with services visited in name order. Fields the
// schema does not know about are carried through in the Extra maps.
func Decode(raw any) (*Document, []validator.Issue) {
	root, ok := asMap(raw)
	if !ok {
		return nil, []validator.Issue{
			validator.Errorf("", "compose document must be an object"),
		}
	}

	var issues []validator.Issue
	doc := &Document{Extra: root}

	services, ok := asMap(root[keyServices])
	if !ok || len(services) == 0 {
		issues = append(issues, validator.Errorf("", "services must be a non-empty object"))
	} else {
		for _, name := range sortedKeys(services) {
			svc, svcIssues := decodeService(name, services[name])
			if len(svcIssues) > 0 {
				issues = append(issues, svcIssues...)
				continue
			}
			doc.Services = append(doc.Services, svc)
		}
	}

	if v, present := root[keyConfigs]; present && v != nil {
		configs, ok := asMap(v)
		if !ok {
			issues = append(issues, validator.Errorf(keyConfigs, "must be an object"))
		}
		doc.Configs = configs
	}

	if v, present := root[keyEnv]; present && v != nil {
		env, ok := asMap(v)
		if !ok {
			issues = append(issues, validator.Errorf(keyEnv, "must be an object"))
		}
		for _, k := range sortedKeys(env) {
			if env[k] == nil {
				issues = append(issues, validator.Errorf(keyEnv+"."+k, "must be a string, number, or boolean"))
				continue
			}
			if _, ok := scalarString(env[k]); !ok {
				issues = append(issues, validator.Errorf(keyEnv+"."+k, "must be a string, number, or boolean"))
			}
		}
		doc.Env = env
	}

	if len(issues) > 0 {
		return nil, issues
	}
	return doc, nil
}

func decodeService(name string, raw any) (*Service, []validator.Issue) {
	field := keyServices + "." + name

	m, ok := asMap(raw)
	if !ok {
		return nil, []validator.Issue{validator.Errorf(field, "must be an object")}
	}

	img, present := m["image"]
	if !present {
		return nil, []validator.Issue{
			validator.Errorf(field, "must have an 'image' field. Build from source is not supported."),
		}
	}
	image, ok := img.(string)
	if !ok {
		issue := validator.Errorf(field+".image", "must be a string")
		issue.Value = img
		return nil, []validator.Issue{issue}
	}

	svc := &Service{
		Name:    name,
		Image:   image,
		Volumes: decodeVolumes(m["volumes"]),
		Configs: decodeConfigRefs(m["configs"]),
		Labels:  map[string]string{},
		Extra:   m,
	}
	if deploy, ok := asMap(m["deploy"]); ok {
		svc.Labels = decodeLabels(deploy["labels"])
	}
	return svc, nil
}

// decodeVolumes keeps string and mapping entries; anything else is not
// something the rules can reason about and is dropped.
func decodeVolumes(raw any) []Volume {
	list, ok := raw.([]any)
	if !ok {
		return nil
	}

	var vols []Volume
	for _, item := range list {
		switch v := item.(type) {
		case string:
			vols = append(vols, parseShortVolume(v))
		default:
			m, ok := asMap(v)
			if !ok {
				continue
			}
			vol := Volume{Kind: VolumeStructured}
			vol.Type, _ = m["type"].(string)
			vol.Source, vol.HasSource = m["source"].(string)
			vol.Target, _ = m["target"].(string)
			vols = append(vols, vol)
		}
	}
	return vols
}

// parseShortVolume splits "source:target[:mode]". A leading single-letter
// segment followed by a path is a Windows drive and stays with the source.
func parseShortVolume(raw string) Volume {
	vol := Volume{Kind: VolumeShort, Raw: raw}

	parts := strings.Split(raw, ":")
	if len(parts) < 2 {
		vol.Target = raw
		return vol
	}
	if len(parts) >= 3 && isDriveLetter(parts[0]) && startsWithSeparator(parts[1]) {
		parts = append([]string{parts[0] + ":" + parts[1]}, parts[2:]...)
	}

	vol.Source = parts[0]
	vol.HasSource = true
	vol.Target = parts[1]
	return vol
}

func decodeConfigRefs(raw any) []ConfigRef {
	list, ok := raw.([]any)
	if !ok {
		return nil
	}

	var refs []ConfigRef
	for _, item := range list {
		switch v := item.(type) {
		case string:
			refs = append(refs, ConfigRef{Short: true, Source: v, Target: "/" + v})
		default:
			m, ok := asMap(v)
			if !ok {
				continue
			}
			ref := ConfigRef{}
			ref.Source, _ = m["source"].(string)
			target, ok := m["target"].(string)
			if !ok {
				target = "/" + ref.Source
			}
			ref.Target = target
			refs = append(refs, ref)
		}
	}
	return refs
}

// decodeLabels accepts both the mapping form and the "KEY=VALUE" list form.
func decodeLabels(raw any) map[string]string {
	labels := map[string]string{}

	if list, ok := raw.([]any); ok {
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				continue
			}
			k, v, _ := strings.Cut(s, "=")
			labels[k] = v
		}
		return labels
	}

	m, _ := asMap(raw)
	for k, v := range m {
		if s, ok := scalarString(v); ok {
			labels[k] = s
		}
	}
	return labels
}

// asMap normalizes a YAML mapping. yaml.v3 yields map[string]any for string
// keys and map[any]any when a key is not a string.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}

// scalarString renders a YAML scalar the way it is written. A null value
// renders as the empty string.
func scalarString(v any) (string, bool) {
	switch s := v.(type) {
	case nil:
		return "", true
	case string:
		return s, true
	case bool:
		return strconv.FormatBool(s), true
	case int:
		return strconv.Itoa(s), true
	case int64:
		return strconv.FormatInt(s, 10), true
	case uint64:
		return strconv.FormatUint(s, 10), true
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), true
	default:
		return "", false
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
