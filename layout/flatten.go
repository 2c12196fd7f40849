package layout

import (
	"github.com/io7m/jpra-sub001/names"
	"github.com/io7m/jpra-sub001/size"
	"github.com/io7m/jpra-sub001/types"
)

// Leaf is a value field that is not itself a record or packed type, placed
// relative to the outermost aggregate.
type Leaf struct {
	Type types.Type
	// Bits is the range within the enclosing packed type, for packed fields.
	Bits   types.BitRange
	Offset size.Size[size.Bits]
	Path   names.FieldPath
	Packed bool
}

// Flatten expands t into its leaf fields in declaration order. Fields whose
// type is a record or packed type are replaced by their own leaves, offset
// by the position of the field. Padding is omitted.
func (c *Calculator) Flatten(t types.UserDefined) []Leaf {
	c.mu.Lock()
	defer c.mu.Unlock()

	var leaves []Leaf
	c.flatten(t, nil, size.Zero[size.Bits](), &leaves)
	return leaves
}

func (c *Calculator) flatten(t types.UserDefined, prefix names.FieldPath, base size.Size[size.Bits], out *[]Leaf) {
	info := c.calculate(t)

	for _, f := range info.Fields {
		if f.IsPadding() {
			continue
		}

		path := make(names.FieldPath, len(prefix), len(prefix)+1)
		copy(path, prefix)
		path = append(path, f.Name)
		offset := base.Add(f.Offset)

		if nested, ok := f.Type.(types.UserDefined); ok {
			c.flatten(nested, path, offset, out)
			continue
		}

		*out = append(*out, Leaf{
			Type:   f.Type,
			Bits:   f.Bits,
			Offset: offset,
			Path:   path,
			Packed: f.Packed,
		})
	}
}
