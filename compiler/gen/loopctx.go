package gen

import "github.com/minic-lang/minic/compiler/ir"

// loopContext is the (entry, body, exit) label triple of one enclosing
// loop. A LIFO of these is sufficient
// because MiniC has no labeled break.
type loopContext struct {
	entry, body, exit *ir.Label
}

// loopStack is the generator's loop-context stack. It is thread-local state of the one translator: there is no
// concurrency here.
type loopStack struct {
	frames []loopContext
}

func (s *loopStack) push(entry, body, exit *ir.Label) {
	s.frames = append(s.frames, loopContext{entry: entry, body: body, exit: exit})
}

func (s *loopStack) pop() {
	s.frames = s.frames[:len(s.frames)-1]
}

func (s *loopStack) empty() bool {
	return len(s.frames) == 0
}

func (s *loopStack) top() loopContext {
	return s.frames[len(s.frames)-1]
}

// depth reports how many loops are currently nested. Tests use this to
// verify the loop-context stack is empty after translating any
// Function.
func (s *loopStack) depth() int {
	return len(s.frames)
}
