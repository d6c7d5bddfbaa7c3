// Package mojangson converts NBT tag trees to and from Mojangson, the textual
// notation Minecraft uses for item and entity data.
//
//   - Encode renders a tree in canonical form: no whitespace, compound entries
//     in insertion order, keys bare when they match [A-Za-z0-9._+-]+.
//   - Decode parses the inverse grammar, accepting whitespace between tokens
//     unless DecodeOpt.Strict is set, and reports *ParseError with the byte
//     offset of malformed input.
//   - Errors follow the Issue model: stable codes, JSON Pointer paths, byte
//     offsets.
//
// The tag model lives in package nbt; the item metadata bridge in package item.
//
// Typical usage:
//
//	root := nbt.NewCompound().Put("Unbreakable", nbt.Byte(1))
//	text, err := mojangson.Encode(root) // {Unbreakable:1b}
//	tag, err := mojangson.Decode(text)
package mojangson
