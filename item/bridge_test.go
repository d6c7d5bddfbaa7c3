package item_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/reoring/mojangson"
	"github.com/reoring/mojangson/chat"
	"github.com/reoring/mojangson/item"
	"github.com/reoring/mojangson/nbt"
)

func encodeProps(t *testing.T, p item.PropertyInfo, reg *item.Registry) string {
	t.Helper()
	c, err := item.ToCompound(p, reg)
	if err != nil {
		t.Fatalf("ToCompound: %v", err)
	}
	s, err := mojangson.Encode(c)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return s
}

func TestToCompound_Empty(t *testing.T) {
	if got := encodeProps(t, item.PropertyInfo{}, nil); got != "{}" {
		t.Fatalf("got %s", got)
	}
	// empty but non-nil collections are still omitted
	p := item.PropertyInfo{Enchantments: []item.Enchantment{}, Lore: [][]chat.Component{}}
	if got := encodeProps(t, p, nil); got != "{}" {
		t.Fatalf("got %s", got)
	}
}

func TestToCompound_EnchantmentsAndUnbreakable(t *testing.T) {
	p := item.NewBuilder().Enchantment("minecraft:sharpness", 5).Unbreakable(true).Build()
	want := `{Enchantments:[{id:"minecraft:sharpness",lvl:5}],Unbreakable:1b}`
	if got := encodeProps(t, p, nil); got != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}
	if got := encodeProps(t, item.PropertyInfo{Unbreakable: item.Bool(false)}, nil); got != "{Unbreakable:0b}" {
		t.Fatalf("got %s", got)
	}
}

func TestToCompound_Display(t *testing.T) {
	p := item.NewBuilder().
		Name(chat.Text("Blade")).
		Lore(chat.Text("a")).
		Lore(chat.Text("b"), chat.Text("c")).
		Build()
	want := `{display:{Name:"{\"text\":\"Blade\"}",Lore:["{\"text\":\"a\"}","[{\"text\":\"b\"},{\"text\":\"c\"}]"]}}`
	if got := encodeProps(t, p, nil); got != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}
}

func TestBridge_SchemaRoundTrip(t *testing.T) {
	inputs := []item.PropertyInfo{
		{},
		item.NewBuilder().Enchantment("minecraft:sharpness", 5).Unbreakable(true).Build(),
		item.NewBuilder().
			Name(chat.Component{Text: "Sword", Color: "gold", Bold: chat.Flag(true)}).
			Lore(chat.Text("first")).
			Lore().
			Enchantment("minecraft:unbreaking", 3).
			Enchantment("minecraft:mending", 1).
			Unbreakable(false).
			Build(),
	}
	for _, p := range inputs {
		c, err := item.ToCompound(p, nil)
		if err != nil {
			t.Fatalf("ToCompound: %v", err)
		}
		back, err := item.FromCompound(c, nil)
		if err != nil {
			t.Fatalf("FromCompound: %v", err)
		}
		again, err := item.ToCompound(back, nil)
		if err != nil {
			t.Fatalf("ToCompound again: %v", err)
		}
		if !nbt.Equal(c, again) {
			t.Fatalf("compound changed:\n%s\n%s", mojangson.MustEncode(c), mojangson.MustEncode(again))
		}
		if !reflect.DeepEqual(p, back) {
			t.Fatalf("properties changed:\n%+v\n%+v", p, back)
		}
	}
}

func TestFromCompound_AcceptsNarrowLevels(t *testing.T) {
	c, err := mojangson.DecodeCompound(`{Enchantments:[{id:"minecraft:sharpness",lvl:5s},{id:"x",lvl:2b},{id:"y",lvl:7L}]}`)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	p, err := item.FromCompound(c, nil)
	if err != nil {
		t.Fatalf("FromCompound: %v", err)
	}
	want := []item.Enchantment{{ID: "minecraft:sharpness", Level: 5}, {ID: "x", Level: 2}, {ID: "y", Level: 7}}
	if !reflect.DeepEqual(p.Enchantments, want) {
		t.Fatalf("got %+v", p.Enchantments)
	}
}

func TestFromCompound_UnbreakableValues(t *testing.T) {
	cases := []struct {
		in   string
		want *bool
	}{
		{"{Unbreakable:1b}", item.Bool(true)},
		{"{Unbreakable:0b}", item.Bool(false)},
		{"{Unbreakable:2b}", nil},
		{"{}", nil},
	}
	for _, c := range cases {
		p, err := item.FromCompound(mustCompound(t, c.in), nil)
		if err != nil {
			t.Fatalf("%s: %v", c.in, err)
		}
		if !reflect.DeepEqual(p.Unbreakable, c.want) {
			t.Fatalf("%s: unbreakable = %v", c.in, p.Unbreakable)
		}
	}
}

func TestFromCompound_CollectsTypeIssues(t *testing.T) {
	c := mustCompound(t, `{Enchantments:[{id:"a",lvl:"x"},{id:1s,lvl:2s},{lvl:99999999999L}],Unbreakable:"no",display:{Name:"not json"}}`)
	_, err := item.FromCompound(c, nil)
	iss, ok := mojangson.AsIssues(err)
	if !ok {
		t.Fatalf("err = %v, want Issues", err)
	}
	want := []struct{ path, code string }{
		{"/Enchantments/0/lvl", mojangson.CodeInvalidType},
		{"/Enchantments/1/id", mojangson.CodeInvalidType},
		{"/Enchantments/2/id", mojangson.CodeRequired},
		{"/Enchantments/2/lvl", mojangson.CodeInvalidType},
		{"/Unbreakable", mojangson.CodeInvalidType},
		{"/display/Name", mojangson.CodeParseError},
	}
	if len(iss) != len(want) {
		t.Fatalf("got %d issues: %v", len(iss), iss)
	}
	for i, w := range want {
		if iss[i].Path != w.path || iss[i].Code != w.code {
			t.Fatalf("issue %d = %s at %s, want %s at %s", i, iss[i].Code, iss[i].Path, w.code, w.path)
		}
	}
}

func TestFromCompound_WrongContainers(t *testing.T) {
	c := mustCompound(t, `{Enchantments:{},display:{Lore:"x"}}`)
	_, err := item.FromCompound(c, nil)
	iss, ok := mojangson.AsIssues(err)
	if !ok || len(iss) != 2 {
		t.Fatalf("err = %v", err)
	}
	if iss[0].Path != "/Enchantments" || iss[1].Path != "/display/Lore" {
		t.Fatalf("paths = %s, %s", iss[0].Path, iss[1].Path)
	}
	if _, err := item.FromCompound(nil, nil); mojangson.Code(err) != mojangson.CodeRequired {
		t.Fatalf("nil compound: err = %v", err)
	}
}

func TestBridge_HandlersRunFirstInOrder(t *testing.T) {
	var order []string
	var seen nbt.Tag
	reg := item.NewRegistry(
		item.HandlerFuncs{
			SerializeFunc: func(root *nbt.Compound) error {
				order = append(order, "first")
				root.Put("custom", nbt.String("x")).Put(item.KeyUnbreakable, nbt.Byte(0))
				return nil
			},
			DeserializeFunc: func(root *nbt.Compound) error {
				seen, _ = root.Get("custom")
				return nil
			},
		},
		item.HandlerFuncs{
			SerializeFunc: func(root *nbt.Compound) error {
				order = append(order, "second")
				return nil
			},
		},
	)
	got := encodeProps(t, item.PropertyInfo{Unbreakable: item.Bool(true)}, reg)
	// the built-in key wins but keeps the position the handler gave it
	if got != `{custom:"x",Unbreakable:1b}` {
		t.Fatalf("got %s", got)
	}
	if !reflect.DeepEqual(order, []string{"first", "second"}) {
		t.Fatalf("order = %v", order)
	}
	if _, err := item.FromCompound(mustCompound(t, got), reg); err != nil {
		t.Fatalf("FromCompound: %v", err)
	}
	if seen != nbt.String("x") {
		t.Fatalf("deserialize hook saw %#v", seen)
	}
}

func TestBridge_HandlerErrorIsWrapped(t *testing.T) {
	boom := errors.New("boom")
	reg := item.NewRegistry(
		item.HandlerFuncs{},
		item.HandlerFuncs{DeserializeFunc: func(*nbt.Compound) error { return boom }},
	)
	_, err := item.FromCompound(nbt.NewCompound(), reg)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if mojangson.Code(err) != mojangson.CodeHandler {
		t.Fatalf("code = %s", mojangson.Code(err))
	}
	iss, _ := mojangson.AsIssues(err)
	if iss[0].Message != "handler 1 deserialize: boom" {
		t.Fatalf("message = %q", iss[0].Message)
	}
}

func TestCodec_MatchesBridge(t *testing.T) {
	codec := item.Codec(nil)
	p := item.NewBuilder().Enchantment("minecraft:looting", 3).Build()
	c, err := codec.Encode(p)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	back, err := codec.Decode(c)
	if err != nil || !reflect.DeepEqual(p, back) {
		t.Fatalf("got %+v, %v", back, err)
	}
}

func mustCompound(t *testing.T, s string) *nbt.Compound {
	t.Helper()
	c, err := mojangson.DecodeCompound(s)
	if err != nil {
		t.Fatalf("decode %s: %v", s, err)
	}
	return c
}
