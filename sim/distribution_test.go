package sim

import (
	"math"
	"math/rand"
	"testing"
)

func TestTriangular_SamplesStayInsideSupport(t *testing.T) {
	// GIVEN a (4, 5, 6) triangle
	rng := rand.New(rand.NewSource(42))

	// WHEN 10000 values are sampled
	// THEN every one lands inside [4, 6]
	for i := 0; i < 10000; i++ {
		v := Triangular(rng, 4, 5, 6)
		if v < 4 || v > 6 {
			t.Fatalf("sample %d = %v outside [4, 6]", i, v)
		}
	}
}

func TestTriangular_MeanMatchesClosedForm(t *testing.T) {
	// GIVEN a (2, 3, 10) triangle with mean (2+3+10)/3 = 5
	rng := rand.New(rand.NewSource(42))

	// WHEN 20000 values are sampled
	n := 20000
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += Triangular(rng, 2, 3, 10)
	}
	mean := sum / float64(n)

	// THEN the sample mean is within 2% of the closed form
	expected := 5.0
	if math.Abs(mean-expected)/expected > 0.02 {
		t.Errorf("mean = %v, want ≈ %v (within 2%%)", mean, expected)
	}
}

func TestTriangular_DegenerateSupport_ReturnsMin(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	if got := Triangular(rng, 5, 5, 5); got != 5 {
		t.Errorf("degenerate triangle: got %v, want 5", got)
	}
}

func TestExponential_MeanMatchesParameter(t *testing.T) {
	// GIVEN mean 90 (the default time-to-failure)
	rng := rand.New(rand.NewSource(42))

	// WHEN 20000 values are sampled
	n := 20000
	sum := 0.0
	for i := 0; i < n; i++ {
		sum += Exponential(rng, 90)
	}
	mean := sum / float64(n)

	// THEN the sample mean is within 5% of the parameter
	if math.Abs(mean-90)/90 > 0.05 {
		t.Errorf("mean = %v, want ≈ 90 (within 5%%)", mean)
	}
}
