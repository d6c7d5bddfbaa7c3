package mojangson_test

import (
	"testing"

	"github.com/reoring/mojangson"
)

func TestPath_Pointer(t *testing.T) {
	root := mojangson.Root()
	if root.Pointer() != "/" {
		t.Fatalf("root = %q", root.Pointer())
	}
	p := root.Field("Enchantments").Index(0).Field("lvl")
	if p.Pointer() != "/Enchantments/0/lvl" {
		t.Fatalf("got %q", p.Pointer())
	}
	if got := root.Field("a/b~c").Pointer(); got != "/a~1b~0c" {
		t.Fatalf("escaped = %q", got)
	}
}

func TestPath_BranchesDoNotShare(t *testing.T) {
	base := mojangson.Root().Field("display")
	a := base.Field("Name")
	b := base.Field("Lore")
	if a.Pointer() != "/display/Name" || b.Pointer() != "/display/Lore" {
		t.Fatalf("got %q and %q", a, b)
	}
	iss := b.Index(2).Issue(mojangson.CodeInvalidType, "expected TAG_String")
	if iss.Path != "/display/Lore/2" || iss.Offset != -1 {
		t.Fatalf("issue = %+v", iss)
	}
}
