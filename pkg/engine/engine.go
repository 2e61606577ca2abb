package engine

import (
	"context"
	"errors"
	"runtime"
	"time"

	. "github.com/ChizhovVadim/CounterLite/pkg/common"
)

type Engine struct {
	Options     Options
	evaluator   Evaluator
	timeManager *timeManager
	transTable  *transTable
	thread      thread
	progress    func(SearchInfo)
	mainLine    mainLine
	start       time.Time
}

type thread struct {
	engine       *Engine
	evaluator    Evaluator
	position     *Position
	nodes        int64
	rootMove     Move
	rootImproved bool
	rootScore    int
	stack        [stackSize]struct {
		moveList [MaxMoves]OrderedMove
		pv       pv
	}
}

type pv struct {
	items [stackSize]Move
	size  int
}

type mainLine struct {
	moves []Move
	score int
	depth int
}

type Evaluator interface {
	Evaluate(p *Position) int
}

func NewEngine(options Options) *Engine {
	var e = &Engine{Options: options}
	e.thread.engine = e
	return e
}

// Prepare allocates the transposition table and the evaluator.
// Options changed since the last call take effect here.
func (e *Engine) Prepare() {
	if e.transTable == nil ||
		e.transTable.Size() != e.Options.Hash ||
		e.transTable.policy != e.Options.TTReplace {
		if e.transTable != nil {
			e.transTable = nil
			runtime.GC()
		}
		var tt, err = newTransTable(e.Options.Hash, e.Options.TTReplace)
		if err != nil {
			panic(err)
		}
		e.transTable = tt
	}
	if e.evaluator == nil {
		e.evaluator = e.buildEvaluator()
		e.thread.evaluator = e.evaluator
	}
}

func (e *Engine) Clear() {
	if e.transTable != nil {
		e.transTable.Clear()
	}
}

// Search runs iterative deepening on p until a limit in searchParams is reached
// or ctx is cancelled. p is restored before Search returns.
func (e *Engine) Search(ctx context.Context, searchParams SearchParams) SearchInfo {
	e.start = time.Now()
	e.Prepare()
	var p = searchParams.Position
	var tm = newTimeManager(ctx, e.start, searchParams.Limits, p.SideToMove())
	return e.search(p, tm, searchParams.Progress)
}

// Think returns the best move found within budget, or MoveEmpty if p has no legal move.
func (e *Engine) Think(p *Position, budget time.Duration) Move {
	e.start = time.Now()
	e.Prepare()
	var tm = newBudgetTimeManager(context.Background(), e.start, budget)
	var si = e.search(p, tm, nil)
	if len(si.MainLine) == 0 {
		return MoveEmpty
	}
	return si.MainLine[0]
}

func (e *Engine) search(p *Position, tm *timeManager, progress func(SearchInfo)) SearchInfo {
	e.timeManager = tm
	defer tm.Close()
	e.transTable.IncDate()
	e.progress = progress
	e.mainLine = mainLine{}
	var t = &e.thread
	t.position = p
	t.nodes = 0
	iterativeDeepening(t)
	t.position = nil
	tm.waitStop()
	return e.currentSearchResult()
}

func iterativeDeepening(t *thread) {
	var e = t.engine
	var first = t.firstRootMove()
	if first == MoveEmpty {
		return
	}
	e.mainLine = mainLine{moves: []Move{first}}
	if t.position.IsDraw() {
		return
	}
	for depth := 1; depth <= maxHeight; depth++ {
		if e.timeManager.IsDone() {
			break
		}
		t.rootMove = e.mainLine.moves[0]
		t.rootImproved = false
		var score, err = t.alphaBeta(-valueInfinity, valueInfinity, depth, 0)
		if err != nil {
			if errors.Is(err, errSearchTimeout) && t.rootImproved {
				// a root move proven before the abort is committed at this depth
				e.mainLine = mainLine{
					depth: depth,
					score: t.rootScore,
					moves: t.stack[0].pv.toSlice(),
				}
			}
			break
		}
		e.mainLine = mainLine{
			depth: depth,
			score: score,
			moves: t.stack[0].pv.toSlice(),
		}
		e.timeManager.OnIterationComplete(e.mainLine)
		if e.progress != nil && t.nodes >= int64(e.Options.ProgressMinNodes) {
			e.progress(e.currentSearchResult())
		}
	}
}

// firstRootMove is the fallback answer when no iteration completes:
// the first move by ordering, the TT move or the best capture.
func (t *thread) firstRootMove() Move {
	var _, _, _, transMove, _ = t.engine.transTable.Read(t.position.Key())
	var mi = moveIterator{
		position:  t.position,
		buffer:    t.stack[0].moveList[:],
		transMove: transMove,
	}
	mi.Init(false)
	return mi.Next()
}

func (e *Engine) currentSearchResult() SearchInfo {
	return SearchInfo{
		Depth:    e.mainLine.depth,
		MainLine: e.mainLine.moves,
		Score:    newUciScore(e.mainLine.score),
		Nodes:    e.thread.nodes,
		Time:     time.Since(e.start),
	}
}

func (t *thread) clearPV(height int) {
	t.stack[height].pv.clear()
}

func (t *thread) assignPV(height int, m Move) {
	t.stack[height].pv.assign(m, &t.stack[height+1].pv)
}

func (pv *pv) clear() {
	pv.size = 0
}

func (pv *pv) assign(m Move, child *pv) {
	pv.size = 1
	pv.items[0] = m
	if child.size > 0 {
		pv.size += child.size
		copy(pv.items[1:], child.items[:child.size])
	}
}

func (pv *pv) toSlice() []Move {
	var result = make([]Move, pv.size)
	copy(result, pv.items[:pv.size])
	return result
}

func (e *Engine) buildEvaluator() Evaluator {
	var evaluationService = e.Options.EvalBuilder()
	if ev, ok := evaluationService.(Evaluator); ok {
		return ev
	}
	panic(errors.New("bad eval builder"))
}
