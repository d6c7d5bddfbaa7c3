package item_test

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	json "github.com/goccy/go-json"

	"github.com/reoring/mojangson"
	"github.com/reoring/mojangson/chat"
	"github.com/reoring/mojangson/item"
	"github.com/reoring/mojangson/nbt"
)

const sharpText = `{Enchantments:[{id:"minecraft:sharpness",lvl:5}],Unbreakable:1b}`

func TestFromProperties_Nil(t *testing.T) {
	_, err := item.FromProperties(nil)
	iss, ok := mojangson.AsIssues(err)
	if !ok || len(iss) != 1 {
		t.Fatalf("err = %v", err)
	}
	if iss[0].Code != mojangson.CodeRequired || iss[0].Path != "/properties" {
		t.Fatalf("issue = %+v", iss[0])
	}
}

func TestFromProperties_Text(t *testing.T) {
	empty, err := item.FromProperties(&item.PropertyInfo{}, item.WithRegistry(nil))
	if err != nil {
		t.Fatalf("empty: %v", err)
	}
	if empty.Text() != "{}" {
		t.Fatalf("empty text = %s", empty.Text())
	}
	p := item.NewBuilder().Unbreakable(true).Enchantment("minecraft:sharpness", 5).Build()
	tag, err := item.FromProperties(&p, item.WithRegistry(nil))
	if err != nil {
		t.Fatalf("FromProperties: %v", err)
	}
	if tag.Text() != sharpText || tag.String() != sharpText {
		t.Fatalf("text = %s", tag.Text())
	}
}

func TestFromProperties_StoresCopy(t *testing.T) {
	p := item.NewBuilder().Name(chat.Text("Blade")).Enchantment("a", 1).Build()
	tag, err := item.FromProperties(&p, item.WithRegistry(nil))
	if err != nil {
		t.Fatalf("FromProperties: %v", err)
	}
	p.Enchantments[0].Level = 9
	p.Name[0].Text = "changed"

	got, err := tag.Properties()
	if err != nil {
		t.Fatalf("Properties: %v", err)
	}
	if got.Enchantments[0].Level != 1 || got.Name[0].Text != "Blade" {
		t.Fatalf("stored value was shared: %+v", got)
	}
	got.Enchantments[0].Level = 7
	again, _ := tag.Properties()
	if again.Enchantments[0].Level != 1 {
		t.Fatalf("returned value was shared")
	}
}

func TestFromText_Properties(t *testing.T) {
	tag := item.FromText(sharpText, item.WithRegistry(nil))
	p, err := tag.Properties()
	if err != nil {
		t.Fatalf("Properties: %v", err)
	}
	want := item.NewBuilder().Enchantment("minecraft:sharpness", 5).Unbreakable(true).Build()
	if !reflect.DeepEqual(p, want) {
		t.Fatalf("got %+v", p)
	}
	p.Enchantments[0].ID = "changed"
	again, _ := tag.Properties()
	if again.Enchantments[0].ID != "minecraft:sharpness" {
		t.Fatalf("cached value was shared")
	}
}

func TestFromText_DecodeRunsOnce(t *testing.T) {
	var calls int
	var mu sync.Mutex
	reg := item.NewRegistry(item.HandlerFuncs{DeserializeFunc: func(*nbt.Compound) error {
		mu.Lock()
		calls++
		mu.Unlock()
		return nil
	}})
	tag := item.FromText("{}", item.WithRegistry(reg))
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := tag.Properties(); err != nil {
				t.Errorf("Properties: %v", err)
			}
		}()
	}
	wg.Wait()
	if calls != 1 {
		t.Fatalf("deserialize ran %d times", calls)
	}
}

func TestFromText_Errors(t *testing.T) {
	_, err := item.FromText("{a:0x1F}", item.WithRegistry(nil)).Properties()
	if !errors.Is(err, mojangson.ErrNotSupported) {
		t.Fatalf("err = %v, want ErrNotSupported", err)
	}
	_, err = item.FromText("{a:", item.WithRegistry(nil)).Properties()
	var pe *mojangson.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want ParseError", err)
	}
	_, err = item.FromText("{Unbreakable:1}", item.WithRegistry(nil)).Properties()
	if mojangson.Code(err) != mojangson.CodeInvalidType {
		t.Fatalf("err = %v, want invalid_type", err)
	}
}

func TestFromText_StrictOption(t *testing.T) {
	strict := item.WithDecodeOptions(mojangson.DecodeOpt{Strict: true})
	if _, err := item.FromText("{Unbreakable: 1b}", item.WithRegistry(nil), strict).Properties(); err == nil {
		t.Fatalf("expected strict mode to reject whitespace")
	}
	if _, err := item.FromText("{Unbreakable: 1b}", item.WithRegistry(nil)).Properties(); err != nil {
		t.Fatalf("permissive: %v", err)
	}
}

func TestTag_EqualAndHash(t *testing.T) {
	p := item.NewBuilder().Enchantment("minecraft:sharpness", 5).Unbreakable(true).Build()
	a, err := item.FromProperties(&p, item.WithRegistry(nil))
	if err != nil {
		t.Fatalf("FromProperties: %v", err)
	}
	b := item.FromText(sharpText)
	if !a.Equal(b) || a.Hash() != b.Hash() {
		t.Fatalf("tags with equal text differ")
	}
	c := item.FromText("{Unbreakable:1b}")
	if a.Equal(c) {
		t.Fatalf("different text compared equal")
	}
	// same properties, different text
	if item.FromText("{ Unbreakable:1b }").Equal(c) {
		t.Fatalf("equality must follow the text")
	}
	var nilTag *item.Tag
	if !nilTag.Equal(nil) || nilTag.Equal(c) {
		t.Fatalf("nil handling")
	}
}

type stack struct {
	Hand *item.Tag `json:"hand"`
}

func TestTag_JSON(t *testing.T) {
	in := stack{Hand: item.FromText("{Unbreakable:1b}")}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `{"hand":"{Unbreakable:1b}"}` {
		t.Fatalf("got %s", data)
	}
	var out stack
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !out.Hand.Equal(in.Hand) {
		t.Fatalf("round trip = %s", out.Hand.Text())
	}
	p, err := out.Hand.Properties()
	if err != nil || p.Unbreakable == nil || !*p.Unbreakable {
		t.Fatalf("properties = %+v, %v", p, err)
	}
}

func TestTag_UnmarshalNonString(t *testing.T) {
	var tag item.Tag
	if err := tag.UnmarshalJSON([]byte(`{a:1}`)); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if tag.Text() != "{a:1}" {
		t.Fatalf("text = %s", tag.Text())
	}
	if err := tag.UnmarshalJSON([]byte(`"{b:2}"`)); err != nil || tag.Text() != "{b:2}" {
		t.Fatalf("text = %s, %v", tag.Text(), err)
	}
}
