package adapters

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/magiconair/properties"
	"github.com/spf13/viper"
)

// propertiesFormats are the extensions read as Java properties files, the
// format Flutter writes local.properties in.
var propertiesFormats = []string{"properties", "props", "prop"}

// propertiesCodec lets viper read and write Java properties files. Dotted
// keys become nested maps so "flutter.minSdkVersion" is addressable the
// same way as in a YAML descriptor.
type propertiesCodec struct{}

func (propertiesCodec) Decode(b []byte, v map[string]any) error {
	props, err := properties.Load(b, properties.UTF8)
	if err != nil {
		return err
	}
	for _, key := range props.Keys() {
		value, _ := props.Get(key)
		insertNested(v, strings.Split(key, "."), value)
	}
	return nil
}

func (propertiesCodec) Encode(v map[string]any) ([]byte, error) {
	flat := map[string]string{}
	flattenNested("", v, flat)
	keys := make([]string, 0, len(flat))
	for key := range flat {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	props := properties.NewProperties()
	for _, key := range keys {
		if _, _, err := props.Set(key, flat[key]); err != nil {
			return nil, err
		}
	}
	var buf bytes.Buffer
	if _, err := props.Write(&buf, properties.UTF8); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// insertNested places value under path. A scalar already sitting where a
// map is needed keeps its place; the nested key is dropped.
func insertNested(target map[string]any, path []string, value string) {
	current := target
	for _, segment := range path[:len(path)-1] {
		next, ok := current[segment]
		if !ok {
			child := map[string]any{}
			current[segment] = child
			current = child
			continue
		}
		child, ok := next.(map[string]any)
		if !ok {
			return
		}
		current = child
	}
	last := path[len(path)-1]
	if _, isMap := current[last].(map[string]any); isMap {
		return
	}
	current[last] = value
}

func flattenNested(prefix string, in map[string]any, out map[string]string) {
	for key, value := range in {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		if child, ok := value.(map[string]any); ok {
			flattenNested(full, child, out)
			continue
		}
		out[full] = fmt.Sprint(value)
	}
}

// newDescriptorViper returns a viper instance that reads properties files
// in addition to the formats viper handles itself.
func newDescriptorViper() (*viper.Viper, error) {
	registry := viper.NewCodecRegistry()
	for _, format := range propertiesFormats {
		if err := registry.RegisterCodec(format, propertiesCodec{}); err != nil {
			return nil, err
		}
	}
	return viper.NewWithOptions(viper.WithCodecRegistry(registry)), nil
}
