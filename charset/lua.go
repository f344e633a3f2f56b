package charset

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

// NewLuaPredicate adapts a Lua function into a character predicate. The
// function receives the character's code point as a number and its string
// form, and returns a truthy value for membership:
//
//	function(code, char) return char == "-" or code >= 0x80 end
//
// Lua states are not safe for concurrent use, so a charset built on a Lua
// predicate must stay confined to the goroutine that owns L. A failing
// call classifies the character as a non-member.
func NewLuaPredicate(L *lua.LState, fn *lua.LFunction) Predicate {
	return func(r rune) bool {
		err := L.CallByParam(lua.P{
			Fn:      fn,
			NRet:    1,
			Protect: true,
		}, lua.LNumber(r), lua.LString(string(r)))
		if err != nil {
			return false
		}
		ret := L.Get(-1)
		L.Pop(1)
		return lua.LVAsBool(ret)
	}
}

// FromLuaTable builds a charset from a Lua table holding an is_word
// function and, optionally, an is_blank function. Missing is_blank falls
// back to the base charset's blank class; a missing or non-function
// is_word is an error.
func FromLuaTable(L *lua.LState, base *Charset, t *lua.LTable) (*Charset, error) {
	if base == nil {
		base = Default()
	}

	wordFn, ok := L.GetField(t, "is_word").(*lua.LFunction)
	if !ok {
		return nil, fmt.Errorf("charset: is_word must be a function")
	}
	word := NewLuaPredicate(L, wordFn)

	blank := base.blank
	if blankFn, ok := L.GetField(t, "is_blank").(*lua.LFunction); ok {
		blank = NewLuaPredicate(L, blankFn)
	}

	return New(word, blank), nil
}
