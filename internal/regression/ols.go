package regression

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/lcarnegie/chart-audio-tools/internal/dataset"
)

var (
	// ErrInsufficientData means there are not more rows than model
	// parameters, so the fit is underdetermined.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrSingularDesign means the predictors are collinear and the
	// normal equations cannot be solved.
	ErrSingularDesign = errors.New("singular design matrix")
)

// InterceptTerm is the coefficient name used for the model intercept.
const InterceptTerm = "intercept"

// Coefficient holds the inference results for one model term.
type Coefficient struct {
	Term     string  `yaml:"term"`
	Estimate float64 `yaml:"estimate"`
	StdError float64 `yaml:"std_error"`
	TStat    float64 `yaml:"t_stat"`
	PValue   float64 `yaml:"p_value"`
}

// Result is the fitted model: the coefficient table plus the
// diagnostic vectors, aligned with the input row order.
type Result struct {
	N            int           `yaml:"n"`
	DF           int           `yaml:"degrees_of_freedom"`
	RSquared     float64       `yaml:"r_squared"`
	ResidualStd  float64       `yaml:"residual_std"`
	Coefficients []Coefficient `yaml:"coefficients"`
	Fitted       []float64     `yaml:"fitted"`
	Residuals    []float64     `yaml:"residuals"`
	Leverage     []float64     `yaml:"leverage"`
}

// Fit estimates popularity on the six predictors plus an intercept by
// ordinary least squares: b = (XᵀX)⁻¹Xᵀy. Standard errors come from
// the estimated residual variance and the (XᵀX)⁻¹ diagonal; p-values
// are two-sided from Student's t with n−p degrees of freedom. It
// returns ErrInsufficientData unless n exceeds the parameter count and
// ErrSingularDesign when XᵀX cannot be inverted.
func Fit(rows []dataset.AnalysisRow) (*Result, error) {
	n := len(rows)
	p := len(dataset.Predictors) + 1
	if n <= p {
		return nil, fmt.Errorf("%w: %d rows for %d parameters", ErrInsufficientData, n, p)
	}

	x := mat.NewDense(n, p, nil)
	y := mat.NewVecDense(n, nil)
	for i, row := range rows {
		x.Set(i, 0, 1)
		for j, name := range dataset.Predictors {
			v, _ := row.Feature(name)
			x.Set(i, j+1, v)
		}
		y.SetVec(i, float64(row.Popularity))
	}

	var xtx mat.Dense
	xtx.Mul(x.T(), x)

	var inv mat.Dense
	if err := inv.Inverse(&xtx); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularDesign, err)
	}

	var xty mat.VecDense
	xty.MulVec(x.T(), y)

	var beta mat.VecDense
	beta.MulVec(&inv, &xty)

	var fitted mat.VecDense
	fitted.MulVec(x, &beta)

	res := &Result{
		N:         n,
		DF:        n - p,
		Fitted:    make([]float64, n),
		Residuals: make([]float64, n),
		Leverage:  make([]float64, n),
	}

	rss := 0.0
	for i := 0; i < n; i++ {
		res.Fitted[i] = fitted.AtVec(i)
		res.Residuals[i] = y.AtVec(i) - fitted.AtVec(i)
		rss += res.Residuals[i] * res.Residuals[i]
	}

	// Leverage: diagonal of the hat matrix, h_i = x_i (XᵀX)⁻¹ x_iᵀ.
	for i := 0; i < n; i++ {
		h := 0.0
		for j := 0; j < p; j++ {
			for k := 0; k < p; k++ {
				h += x.At(i, j) * inv.At(j, k) * x.At(i, k)
			}
		}
		res.Leverage[i] = h
	}

	s2 := rss / float64(res.DF)
	res.ResidualStd = math.Sqrt(s2)

	mean := 0.0
	for i := 0; i < n; i++ {
		mean += y.AtVec(i)
	}
	mean /= float64(n)
	tss := 0.0
	for i := 0; i < n; i++ {
		d := y.AtVec(i) - mean
		tss += d * d
	}
	if tss > 0 {
		res.RSquared = 1 - rss/tss
	}

	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(res.DF)}
	terms := append([]string{InterceptTerm}, dataset.Predictors...)
	res.Coefficients = make([]Coefficient, p)
	for j := 0; j < p; j++ {
		est := beta.AtVec(j)
		se := math.Sqrt(s2 * inv.At(j, j))
		t := est / se
		res.Coefficients[j] = Coefficient{
			Term:     terms[j],
			Estimate: est,
			StdError: se,
			TStat:    t,
			PValue:   2 * dist.CDF(-math.Abs(t)),
		}
	}

	return res, nil
}
