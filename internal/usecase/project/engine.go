// Package project maintains the fixed 2D projection basis used for the
// shared corpus map.
package project

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"go.uber.org/zap"

	"github.com/kailas-cloud/archetype/internal/domain/analysis"
	"github.com/kailas-cloud/archetype/internal/usecase/corpus"
)

// minFigures is the smallest corpus for which a 2-component basis is meaningful.
const minFigures = 3

// Engine holds the projection basis fit once over the corpus aggregates.
// Refitting per request would move every figure on the map, so the basis and
// the corpus points are computed at startup and never change. A nil basis
// marks a degraded engine: projection is skipped, requests still succeed.
type Engine struct {
	basis  *mat.Dense // dim x 2, principal component columns
	mean   []float64  // per-dimension corpus mean, applied before projecting
	dim    int
	points []analysis.Point // corpus points in index order, cached
}

// Fit computes the PCA basis over all corpus aggregate embeddings.
// Corpora too small (or too degenerate) for two components yield a degraded
// engine rather than an error.
func Fit(index *corpus.Index, logger *zap.Logger) *Engine {
	n, d := index.Size(), index.Dim()
	if n < minFigures {
		logger.Warn("Projection disabled: corpus too small",
			zap.Int("figures", n),
			zap.Int("min_figures", minFigures),
		)
		return &Engine{}
	}

	figures := index.All()
	data := mat.NewDense(n, d, nil)
	mean := make([]float64, d)
	for i := range figures {
		emb := figures[i].Embedding()
		for j, x := range emb {
			data.Set(i, j, float64(x))
			mean[j] += float64(x)
		}
	}
	for j := range mean {
		mean[j] /= float64(n)
	}

	var pc stat.PC
	if !pc.PrincipalComponents(data, nil) {
		logger.Warn("Projection disabled: PCA failed to converge")
		return &Engine{}
	}

	var vec mat.Dense
	pc.VectorsTo(&vec)
	if _, cols := vec.Dims(); cols < 2 {
		logger.Warn("Projection disabled: fewer than 2 principal components",
			zap.Int("components", cols),
		)
		return &Engine{}
	}

	e := &Engine{
		basis: mat.DenseCopyOf(vec.Slice(0, d, 0, 2)),
		mean:  mean,
		dim:   d,
	}

	e.points = make([]analysis.Point, n)
	for i := range figures {
		x, y := e.transform(figures[i].Embedding())
		e.points[i] = analysis.Point{Label: figures[i].Name(), X: x, Y: y}
	}

	logger.Info("Projection basis fitted",
		zap.Int("figures", n),
		zap.Int("dimensions", d),
	)
	return e
}

// Enabled reports whether a basis was fit.
func (e *Engine) Enabled() bool { return e.basis != nil }

// CorpusPoints returns the cached figure coordinates in corpus order.
// The slice is a copy; callers may not reach the shared state through it.
func (e *Engine) CorpusPoints() []analysis.Point {
	if !e.Enabled() {
		return nil
	}
	out := make([]analysis.Point, len(e.points))
	copy(out, e.points)
	return out
}

// Project maps a query vector into the fixed basis, labeled as the user
// point. Returns false when the engine is degraded or the vector does not
// match the corpus dimensionality.
func (e *Engine) Project(query []float32) (analysis.Point, bool) {
	if !e.Enabled() || len(query) != e.dim {
		return analysis.Point{}, false
	}
	x, y := e.transform(query)
	return analysis.Point{Label: analysis.UserLabel, X: x, Y: y}, true
}

// transform centers a vector with the corpus mean and applies the basis.
func (e *Engine) transform(v []float32) (float64, float64) {
	var x, y float64
	for j := range v {
		centered := float64(v[j]) - e.mean[j]
		x += centered * e.basis.At(j, 0)
		y += centered * e.basis.At(j, 1)
	}
	return x, y
}
