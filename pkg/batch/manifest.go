package batch

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/stackbadge/pkg/badge"
	"github.com/matzehuels/stackbadge/pkg/color"
	"github.com/matzehuels/stackbadge/pkg/errors"
)

// Format is the encoding of a manifest file.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// AutoIDSuffix asks for a random id suffix.
const AutoIDSuffix = "auto"

// Manifest lists the badges of a batch run.
//
//	[defaults]
//	style = "flat-square"
//
//	[[badges]]
//	name = "build"
//	label = "build"
//	message = "passing"
type Manifest struct {
	Defaults Defaults `toml:"defaults" yaml:"defaults"`
	Badges   []Entry  `toml:"badges" yaml:"badges" validate:"required,min=1,dive"`
}

// Defaults fill in fields that an entry leaves empty.
type Defaults struct {
	Style        string `toml:"style" yaml:"style" validate:"omitempty,badge_style"`
	LabelColor   string `toml:"label_color" yaml:"label_color" validate:"omitempty,badge_color"`
	MessageColor string `toml:"message_color" yaml:"message_color" validate:"omitempty,badge_color"`
	LogoColor    string `toml:"logo_color" yaml:"logo_color" validate:"omitempty,badge_color"`
}

// Entry is one badge of a manifest. Name is the output file name without
// the .svg extension.
type Entry struct {
	Name         string `toml:"name" yaml:"name" validate:"required,output_name"`
	Label        string `toml:"label" yaml:"label"`
	LabelColor   string `toml:"label_color" yaml:"label_color" validate:"omitempty,badge_color"`
	Message      string `toml:"message" yaml:"message"`
	MessageColor string `toml:"message_color" yaml:"message_color" validate:"omitempty,badge_color"`
	Style        string `toml:"style" yaml:"style" validate:"omitempty,badge_style"`
	Logo         string `toml:"logo" yaml:"logo"`
	Icon         string `toml:"icon" yaml:"icon"`
	LogoColor    string `toml:"logo_color" yaml:"logo_color" validate:"omitempty,badge_color"`
	LogoWidth    int    `toml:"logo_width" yaml:"logo_width" validate:"gte=0,lte=512"`
	IDSuffix     string `toml:"id_suffix" yaml:"id_suffix" validate:"omitempty,id_suffix"`
	LeftLink     string `toml:"left_link" yaml:"left_link" validate:"omitempty,badge_link"`
	RightLink    string `toml:"right_link" yaml:"right_link" validate:"omitempty,badge_link"`
}

// Badge resolves e against d. An IDSuffix of "auto" becomes a random suffix.
func (e Entry) Badge(d Defaults) (badge.Badge, error) {
	style, err := badge.ParseStyle(firstOf(e.Style, d.Style, badge.Flat.String()))
	if err != nil {
		return badge.Badge{}, err
	}
	suffix := e.IDSuffix
	if suffix == AutoIDSuffix {
		suffix = badge.RandomIDSuffix()
	}
	return badge.Badge{
		Label:        e.Label,
		LabelColor:   firstOf(e.LabelColor, d.LabelColor),
		Message:      e.Message,
		MessageColor: firstOf(e.MessageColor, d.MessageColor),
		Style:        style,
		Logo:         e.Logo,
		Icon:         e.Icon,
		LogoColor:    firstOf(e.LogoColor, d.LogoColor),
		LogoWidth:    e.LogoWidth,
		IDSuffix:     suffix,
		LeftLink:     e.LeftLink,
		RightLink:    e.RightLink,
	}, nil
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// FormatOf picks the manifest format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", errors.New(errors.ErrCodeInvalidManifest, "%s: unknown manifest extension, want .toml, .yaml or .yml", path)
}

// LoadManifest reads, decodes and validates a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeNotFound, err, "read manifest %s", path)
	}
	m, err := ParseManifest(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// ParseManifest decodes and validates a manifest. Unknown keys are errors.
func ParseManifest(data []byte, format Format) (*Manifest, error) {
	var m Manifest
	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(data), &m)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode toml")
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, errors.New(errors.ErrCodeInvalidManifest, "unknown key %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "decode yaml")
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidManifest, "unknown manifest format %q", format)
	}

	if err := Validate(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator with the badge-specific
// tags registered. Field names in errors use the yaml keys.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("badge_style", func(fl validator.FieldLevel) bool {
			_, err := badge.ParseStyle(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("badge_color", func(fl validator.FieldLevel) bool {
			_, err := color.Parse(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("badge_link", func(fl validator.FieldLevel) bool {
			return errors.ValidateLinkURL(fl.Field().String()) == nil
		})

		_ = v.RegisterValidation("id_suffix", func(fl validator.FieldLevel) bool {
			s := fl.Field().String()
			return s == AutoIDSuffix || errors.ValidateIDSuffix(s) == nil
		})

		_ = v.RegisterValidation("output_name", func(fl validator.FieldLevel) bool {
			return errors.ValidateOutputName(fl.Field().String()) == nil
		})

		validateInst = v
	})
	return validateInst
}

// Validate checks field formats and that entry names are unique.
func Validate(m *Manifest) error {
	if m == nil {
		return errors.NewValidationError("manifest", "manifest is nil", nil)
	}
	if err := validatorInstance().Struct(m); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(m.Badges))
	for i, e := range m.Badges {
		if prev, ok := seen[e.Name]; ok {
			return errors.NewValidationError(fieldForEntry(i, "name"),
				fmt.Sprintf("duplicate name %q, first used by badges[%d]", e.Name, prev), nil)
		}
		seen[e.Name] = i
	}
	return nil
}

// convertValidationError reports the first failing field.
func convertValidationError(err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		fe := ves[0]
		field := fieldPath(fe)
		msg := fmt.Sprintf("%q failed validation for tag '%s'", fmt.Sprint(fe.Value()), fe.Tag())
		if fe.Tag() == "required" {
			msg = "is required"
		}
		return errors.NewValidationError(field, msg, err)
	}
	return errors.NewValidationError("manifest", err.Error(), err)
}

// fieldPath drops the root type from a namespace such as
// "Manifest.badges[2].style".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func fieldForEntry(index int, field string) string {
	return fmt.Sprintf("badges[%d].%s", index, field)
}
