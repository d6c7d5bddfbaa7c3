package item

import (
	"fmt"
	"math"

	"github.com/reoring/mojangson"
	"github.com/reoring/mojangson/chat"
	"github.com/reoring/mojangson/nbt"
)

// Keys of the built-in item properties.
const (
	KeyEnchantments = "Enchantments"
	KeyUnbreakable  = "Unbreakable"
	KeyDisplay      = "display"
	KeyName         = "Name"
	KeyLore         = "Lore"
	keyID           = "id"
	keyLevel        = "lvl"
)

// ToCompound renders p as an item compound. Handlers from reg run first, in
// registration order, followed by Enchantments, Unbreakable and display. A
// nil reg means no handlers.
func ToCompound(p PropertyInfo, reg *Registry) (*nbt.Compound, error) {
	root := nbt.NewCompound()
	for i, h := range reg.snapshot() {
		if err := h.Serialize(root); err != nil {
			return nil, handlerIssue(i, "serialize", err)
		}
	}

	if len(p.Enchantments) > 0 {
		list := nbt.MustList(nbt.KindCompound)
		for _, e := range p.Enchantments {
			entry := nbt.NewCompound().
				Put(keyID, nbt.String(e.ID)).
				Put(keyLevel, nbt.Int(e.Level))
			if err := list.Append(entry); err != nil {
				return nil, err
			}
		}
		root.Put(KeyEnchantments, list)
	}

	if p.Unbreakable != nil {
		root.Put(KeyUnbreakable, nbt.Bool(*p.Unbreakable))
	}

	display := nbt.NewCompound()
	if p.Name != nil {
		s, err := chat.Serialize(p.Name)
		if err != nil {
			return nil, fmt.Errorf("item: display name: %w", err)
		}
		display.Put(KeyName, nbt.String(s))
	}
	if len(p.Lore) > 0 {
		lore := nbt.MustList(nbt.KindString)
		for i, line := range p.Lore {
			s, err := chat.Serialize(line)
			if err != nil {
				return nil, fmt.Errorf("item: lore line %d: %w", i, err)
			}
			if err := lore.Append(nbt.String(s)); err != nil {
				return nil, err
			}
		}
		display.Put(KeyLore, lore)
	}
	if display.Len() > 0 {
		root.Put(KeyDisplay, display)
	}
	return root, nil
}

// FromCompound reads the built-in properties out of c after running the
// Deserialize hook of every handler in reg. Type mismatches are collected
// into mojangson.Issues; a handler failure aborts immediately.
func FromCompound(c *nbt.Compound, reg *Registry) (PropertyInfo, error) {
	var out PropertyInfo
	if c == nil {
		return out, mojangson.Required("/", "compound")
	}
	for i, h := range reg.snapshot() {
		if err := h.Deserialize(c); err != nil {
			return PropertyInfo{}, handlerIssue(i, "deserialize", err)
		}
	}

	var iss mojangson.Issues
	if v, ok := c.Get(KeyEnchantments); ok {
		out.Enchantments, iss = readEnchantments(v, iss)
	}
	if v, ok := c.Get(KeyUnbreakable); ok {
		if b, isByte := v.(nbt.Byte); isByte {
			switch b {
			case 0:
				out.Unbreakable = Bool(false)
			case 1:
				out.Unbreakable = Bool(true)
			}
		} else {
			iss = append(iss, typeIssue(mojangson.Root().Field(KeyUnbreakable), nbt.KindByte, v))
		}
	}
	if v, ok := c.Get(KeyDisplay); ok {
		iss = readDisplay(v, &out, iss)
	}

	if len(iss) > 0 {
		return PropertyInfo{}, iss
	}
	return out, nil
}

// Codec exposes the bridge as a codec between compounds and properties.
func Codec(reg *Registry) mojangson.Codec[*nbt.Compound, PropertyInfo] {
	return bridgeCodec{reg: reg}
}

type bridgeCodec struct{ reg *Registry }

func (b bridgeCodec) Decode(c *nbt.Compound) (PropertyInfo, error) { return FromCompound(c, b.reg) }
func (b bridgeCodec) Encode(p PropertyInfo) (*nbt.Compound, error) { return ToCompound(p, b.reg) }

func readEnchantments(v nbt.Tag, iss mojangson.Issues) ([]Enchantment, mojangson.Issues) {
	base := mojangson.Root().Field(KeyEnchantments)
	list, ok := v.(*nbt.List)
	if !ok {
		return nil, append(iss, typeIssue(base, nbt.KindList, v))
	}
	var out []Enchantment
	for i, el := range list.Items() {
		path := base.Index(i)
		entry, ok := el.(*nbt.Compound)
		if !ok {
			iss = append(iss, typeIssue(path, nbt.KindCompound, el))
			continue
		}
		var e Enchantment
		valid := true
		if id, ok := entry.Get(keyID); !ok {
			iss = append(iss, missingIssue(path.Field(keyID)))
			valid = false
		} else if s, isString := id.(nbt.String); isString {
			e.ID = string(s)
		} else {
			iss = append(iss, typeIssue(path.Field(keyID), nbt.KindString, id))
			valid = false
		}
		if lvl, ok := entry.Get(keyLevel); !ok {
			iss = append(iss, missingIssue(path.Field(keyLevel)))
			valid = false
		} else if n, isInt := int32Value(lvl); isInt {
			e.Level = n
		} else {
			iss = append(iss, typeIssue(path.Field(keyLevel), nbt.KindInt, lvl))
			valid = false
		}
		if valid {
			out = append(out, e)
		}
	}
	return out, iss
}

func readDisplay(v nbt.Tag, out *PropertyInfo, iss mojangson.Issues) mojangson.Issues {
	base := mojangson.Root().Field(KeyDisplay)
	display, ok := v.(*nbt.Compound)
	if !ok {
		return append(iss, typeIssue(base, nbt.KindCompound, v))
	}
	if name, ok := display.Get(KeyName); ok {
		path := base.Field(KeyName)
		if s, isString := name.(nbt.String); isString {
			cs, err := chat.Parse(string(s))
			if err != nil {
				iss = append(iss, textIssue(path, err))
			} else {
				out.Name = cs
			}
		} else {
			iss = append(iss, typeIssue(path, nbt.KindString, name))
		}
	}
	if lore, ok := display.Get(KeyLore); ok {
		path := base.Field(KeyLore)
		list, isList := lore.(*nbt.List)
		if !isList {
			return append(iss, typeIssue(path, nbt.KindList, lore))
		}
		for i, el := range list.Items() {
			linePath := path.Index(i)
			s, isString := el.(nbt.String)
			if !isString {
				iss = append(iss, typeIssue(linePath, nbt.KindString, el))
				continue
			}
			cs, err := chat.Parse(string(s))
			if err != nil {
				iss = append(iss, textIssue(linePath, err))
				continue
			}
			out.Lore = append(out.Lore, cs)
		}
	}
	return iss
}

// int32Value accepts any integral tag whose value fits in an int32.
func int32Value(t nbt.Tag) (int32, bool) {
	var n int64
	switch v := t.(type) {
	case nbt.Byte:
		n = int64(v)
	case nbt.Short:
		n = int64(v)
	case nbt.Int:
		n = int64(v)
	case nbt.Long:
		n = int64(v)
	default:
		return 0, false
	}
	if n < math.MinInt32 || n > math.MaxInt32 {
		return 0, false
	}
	return int32(n), true
}

func typeIssue(path mojangson.Path, want nbt.Kind, got nbt.Tag) mojangson.Issue {
	found := "nothing"
	if got != nil {
		found = got.Kind().String()
	}
	return path.Issue(mojangson.CodeInvalidType, fmt.Sprintf("expected %s, found %s", want, found))
}

func missingIssue(path mojangson.Path) mojangson.Issue {
	return path.Issue(mojangson.CodeRequired, "missing key")
}

func textIssue(path mojangson.Path, err error) mojangson.Issue {
	it := path.Issue(mojangson.CodeParseError, err.Error())
	it.Cause = err
	return it
}

func handlerIssue(i int, op string, err error) mojangson.Issues {
	it := mojangson.Root().Issue(mojangson.CodeHandler, fmt.Sprintf("handler %d %s: %v", i, op, err))
	it.Cause = err
	return mojangson.Issues{it}
}
