// Package walkthrough replays a guided tour of the pattern language, one
// section per feature, printing what each match selects.
package walkthrough

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/t14raptor/go-match/ast"
	"github.com/t14raptor/go-match/matcher"
	"github.com/t14raptor/go-match/parser"
	"github.com/t14raptor/go-match/value"
)

// Game is a rock-paper-scissors round. It can be matched positionally
// (player one, player two) and by key (p1, p2).
type Game struct {
	P1, P2 string
}

func (g *Game) Deconstruct() []any {
	return []any{g.P1, g.P2}
}

func (g *Game) DeconstructKeys([]string) map[string]any {
	return map[string]any{"p1": g.P1, "p2": g.P2}
}

// GameType is the type tag of *Game.
var GameType = value.TypeOf[*Game]("RockPaperScissorMatch")

type tour struct {
	out io.Writer
	log *zap.Logger
	err error
}

// Run prints the tour to w. Matcher decisions are traced to log at debug
// level.
func Run(w io.Writer, log *zap.Logger) error {
	t := &tour{out: w, log: log}

	sections := []func(){
		t.payloads,
		t.destructuring,
		t.filtering,
		t.alternatives,
		t.arrays,
		t.partialHashes,
		t.closedHashes,
		t.splats,
		t.nested,
		t.overwriting,
		t.pinning,
		t.customTypes,
		t.guards,
	}
	for _, section := range sections {
		section()
	}
	return t.err
}

func (t *tour) fail(err error) {
	t.err = errors.Join(t.err, err)
}

func (t *tour) pattern(src string) ast.Pattern {
	p, err := parser.ParsePattern(src, parser.WithType(GameType))
	if err != nil {
		t.fail(fmt.Errorf("parse %q: %w", src, err))
		return &ast.WildcardPattern{}
	}
	return p
}

func (t *tour) newMatcher(scope matcher.Bindings) *matcher.Matcher {
	return matcher.New(matcher.WithLogger(t.log), matcher.WithScope(scope))
}

func (t *tour) match(v any, arms ...matcher.Arm) {
	if _, _, err := t.newMatcher(nil).Match(v, arms...); err != nil {
		t.fail(err)
	}
}

func (t *tour) puts(format string, args ...any) {
	fmt.Fprintf(t.out, format+"\n", args...)
}

// say returns an action printing a fixed line.
func (t *tour) say(line string) matcher.Action {
	return func(matcher.Bindings) {
		t.puts("%s", line)
	}
}

func (t *tour) payloads() {
	parse := func(v any) {
		t.match(v,
			matcher.In(t.pattern("error:"), func(b matcher.Bindings) {
				t.puts("this is an error: %s", value.Format(b["error"]))
			}),
			matcher.In(t.pattern("data:"), func(b matcher.Bindings) {
				t.puts("this is the data: %s", value.Format(b["data"]))
			}),
			matcher.Else(t.say("unknown payload")),
		)
	}

	parse(value.NewMap("error", "Something went wrong"))
	parse(value.NewMap("data", value.NewMap("a", 1, "b", 2)))
	parse(value.NewMap("config", value.NewMap("name", "FooBar")))
}

func (t *tour) destructuring() {
	m := t.newMatcher(nil)
	p := t.pattern("{config: {user:}}")

	if err := m.Assign(value.NewMap("config", value.NewMap("user", "Foo")), p); err != nil {
		t.fail(err)
	}
	user, _ := m.Lookup("user")
	t.puts("This is the user name: %s", value.Format(user))

	if _, err := m.In(value.NewMap("config", value.NewMap("user", "Bar")), p); err != nil {
		t.fail(err)
	}
	user, _ = m.Lookup("user")
	t.puts("This is the user name: %s", value.Format(user))
}

func (t *tour) filtering() {
	users := []any{
		value.NewMap("name", "Foo", "age", 29),
		value.NewMap("name", "Bar", "age", 24),
	}
	older, err := matcher.Filter(users, t.pattern("{age: 25..}"))
	if err != nil {
		t.fail(err)
		return
	}
	for _, u := range older {
		t.puts("%s", value.Inspect(u))
	}
}

func (t *tour) alternatives() {
	integerOrString := func(v any) {
		t.match(v,
			matcher.In(t.pattern("String | Integer"), t.say("integer or string")),
			matcher.Else(t.say("something else")),
		)
	}

	integerOrString(1)
	integerOrString("hello world")
	integerOrString(value.NewMap("name", "Foo", "age", 12))
}

func (t *tour) arrays() {
	sizeThree := func(v any) {
		t.match(v,
			matcher.In(t.pattern("[Integer, Integer, Integer]"), t.say("matched the array size")),
			matcher.Else(t.say("did not match")),
		)
	}

	sizeThree([]any{1, 2, 3})
	sizeThree([]any{1, 2, 3, 4})
}

func (t *tour) partialHashes() {
	stringName := func(v any) {
		t.match(v,
			matcher.In(t.pattern("{}"), t.say("empty hash")),
			matcher.In(t.pattern("name: String"), t.say("hash has name")),
			matcher.Else(t.say("did not match")),
		)
	}

	stringName(value.NewMap("name", "Joao"))
	stringName(value.NewMap("name", 44))
	stringName(value.NewMap("age", 20))
}

func (t *tour) closedHashes() {
	tokenOnly := func(v any) {
		t.match(v,
			matcher.In(t.pattern("token: String => token, **nil"), func(b matcher.Bindings) {
				t.puts("token is here: %s", value.Format(b["token"]))
			}),
			matcher.Else(t.say("unknown format")),
		)
	}

	tokenOnly(value.NewMap("token", "xyz"))
	tokenOnly(value.NewMap("token", "zyx", "refresh_token", "foo"))
}

func (t *tour) splats() {
	headAndTail := func(v any) {
		t.match(v,
			matcher.In(t.pattern("[*head, Integer => middle, *tail]"), func(b matcher.Bindings) {
				t.puts("head is: %s, middle is: %s and tail is: %s",
					value.Format(b["head"]), value.Format(b["middle"]), value.Format(b["tail"]))
			}),
			matcher.In(t.pattern("name: String => head, **tail"), func(b matcher.Bindings) {
				t.puts("head is: %s, and tail is: %s", value.Format(b["head"]), value.Format(b["tail"]))
			}),
			matcher.Else(t.say("no match")),
		)
	}

	headAndTail([]any{"a", 2, 3, 4, 5, 6, 7})
	headAndTail(value.NewMap("name", "Foo", "a", 1, "b", 2, "c", 3))
}

func (t *tour) nested() {
	firstMember := func(v any) {
		t.match(v,
			matcher.In(t.pattern("data: {members: [first_member, *]}"), func(b matcher.Bindings) {
				t.puts("first member is %s", value.Format(b["first_member"]))
			}),
			matcher.Else(t.say("no match")),
		)
	}

	members := []any{value.NewMap("name", "Foo"), value.NewMap("name", "Bar")}
	firstMember(value.NewMap("data", value.NewMap("members", members)))
	firstMember(value.NewMap("data", value.NewMap("pets", members)))
}

func (t *tour) overwriting() {
	// The literal-looking variable in the pattern is a fresh binding, so the
	// 18 in scope is lost.
	m := t.newMatcher(matcher.Bindings{"expectation": 18})
	if err := m.Assign([]any{1, 2}, t.pattern("[expectation, 2]")); err != nil {
		t.fail(err)
	}
	expectation, _ := m.Lookup("expectation")
	t.puts("expectation was: %s", value.Format(expectation))
}

func (t *tour) pinning() {
	withPin := func(expectation any) {
		m := t.newMatcher(matcher.Bindings{"expectation": expectation})
		_, _, err := m.Match([]any{1, 2},
			matcher.In(t.pattern("[^expectation, 2]"), func(b matcher.Bindings) {
				t.puts("expectation was: %s", value.Format(b["expectation"]))
			}),
			matcher.Else(t.say("did not match")),
		)
		if err != nil {
			t.fail(err)
		}
	}

	withPin(1)
	withPin(18)

	lastInList := func(v any) {
		t.match(v,
			matcher.In(t.pattern("name:, list: [*, {name: ^name}]"), func(b matcher.Bindings) {
				t.puts("%s is last in list", value.Format(b["name"]))
			}),
			matcher.Else(t.say("did not match")),
		)
	}

	list := []any{value.NewMap("name", "Foo"), value.NewMap("name", "Bar")}
	lastInList(value.NewMap("name", "Bar", "list", list))
	lastInList(value.NewMap("name", "FooBar", "list", list))
}

func (t *tour) customTypes() {
	game := &Game{P1: "paper", P2: "rock"}

	t.match(game,
		matcher.In(t.pattern("'rock', 'paper'"), t.say("You win")),
		matcher.In(t.pattern("'paper', 'rock'"), t.say("You lose")),
		matcher.Else(t.say("DRAW!")),
	)

	m := t.newMatcher(nil)
	if err := m.Assign(game, t.pattern("{p1:, p2:}")); err != nil {
		t.fail(err)
	}
	p1, _ := m.Lookup("p1")
	p2, _ := m.Lookup("p2")
	t.puts("Player 1 played %s and Player 2 played %s", value.Format(p1), value.Format(p2))

	t.match(game,
		matcher.In(t.pattern("RockPaperScissorMatch['rock', 'paper']"), t.say("You win")),
		matcher.In(t.pattern("RockPaperScissorMatch['paper', 'rock']"), t.say("You lose")),
		matcher.Else(t.say("DRAW!")),
	)

	if err := t.newMatcher(nil).Assign([]any{0}, t.pattern("[*, 0, *]")); err != nil {
		t.fail(err)
	}
}

func (t *tour) guards() {
	t.match([]any{2, 4},
		matcher.InIf(t.pattern("2 => a, b"), atLeastDouble, t.say("match")),
		matcher.Else(t.say("did not match")),
	)
}

// atLeastDouble holds when b is a number no smaller than twice a, whatever
// numeric types the two were bound as.
func atLeastDouble(b matcher.Bindings) bool {
	a, ok := value.AsFloat(b["a"])
	if !ok {
		return false
	}
	c, ok := value.Compare(b["b"], a*2)
	return ok && c >= 0
}
