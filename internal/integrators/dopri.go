package integrators

import "math"

// Dormand-Prince coefficients (RK45)
var (
	a2 = 1.0 / 5.0
	a3 = 3.0 / 10.0
	a4 = 4.0 / 5.0
	a5 = 8.0 / 9.0

	b21 = 1.0 / 5.0
	b31 = 3.0 / 40.0
	b32 = 9.0 / 40.0
	b41 = 44.0 / 45.0
	b42 = -56.0 / 15.0
	b43 = 32.0 / 9.0
	b51 = 19372.0 / 6561.0
	b52 = -25360.0 / 2187.0
	b53 = 64448.0 / 6561.0
	b54 = -212.0 / 729.0
	b61 = 9017.0 / 3168.0
	b62 = -355.0 / 33.0
	b63 = 46732.0 / 5247.0
	b64 = 49.0 / 176.0
	b65 = -5103.0 / 18656.0

	c1 = 35.0 / 384.0
	c3 = 500.0 / 1113.0
	c4 = 125.0 / 192.0
	c5 = -2187.0 / 6784.0
	c6 = 11.0 / 84.0

	dc1 = c1 - 5179.0/57600.0
	dc3 = c3 - 7571.0/16695.0
	dc4 = c4 - 393.0/640.0
	dc5 = c5 - -92097.0/339200.0
	dc6 = c6 - 187.0/2100.0
	dc7 = -1.0 / 40.0
)

// Dopri is an adaptive Dormand-Prince 5(4) stepper.
type Dopri struct {
	safety   float64
	minScale float64
	maxScale float64
}

func NewDopri() *Dopri {
	return &Dopri{
		safety:   0.9,
		minScale: 0.2,
		maxScale: 10.0,
	}
}

func (d *Dopri) Step(f DerivFunc, y []float64, t, dt float64) []float64 {
	yNew, _ := d.attempt(f, y, t, dt)
	return yNew
}

// StepAdaptive takes one step of size dt and returns the new state along
// with a suggested next step size for the given tolerance. The step is
// always taken; rejection is the caller's decision.
func (d *Dopri) StepAdaptive(f DerivFunc, y []float64, t, dt, tol float64) ([]float64, float64, error) {
	yNew, errMax := d.attempt(f, y, t, dt)
	return yNew, d.nextStep(dt, errMax/tol), nil
}

// attempt computes the fifth-order solution and the scaled error estimate
// between the embedded fourth- and fifth-order results.
func (d *Dopri) attempt(f DerivFunc, y []float64, t, dt float64) ([]float64, float64) {
	n := len(y)

	k1 := f(t, y)

	y2 := make([]float64, n)
	for i := 0; i < n; i++ {
		y2[i] = y[i] + dt*b21*k1[i]
	}
	k2 := f(t+a2*dt, y2)

	y3 := make([]float64, n)
	for i := 0; i < n; i++ {
		y3[i] = y[i] + dt*(b31*k1[i]+b32*k2[i])
	}
	k3 := f(t+a3*dt, y3)

	y4 := make([]float64, n)
	for i := 0; i < n; i++ {
		y4[i] = y[i] + dt*(b41*k1[i]+b42*k2[i]+b43*k3[i])
	}
	k4 := f(t+a4*dt, y4)

	y5 := make([]float64, n)
	for i := 0; i < n; i++ {
		y5[i] = y[i] + dt*(b51*k1[i]+b52*k2[i]+b53*k3[i]+b54*k4[i])
	}
	k5 := f(t+a5*dt, y5)

	y6 := make([]float64, n)
	for i := 0; i < n; i++ {
		y6[i] = y[i] + dt*(b61*k1[i]+b62*k2[i]+b63*k3[i]+b64*k4[i]+b65*k5[i])
	}
	k6 := f(t+dt, y6)

	yNew := make([]float64, n)
	for i := 0; i < n; i++ {
		yNew[i] = y[i] + dt*(c1*k1[i]+c3*k3[i]+c4*k4[i]+c5*k5[i]+c6*k6[i])
	}

	k7 := f(t+dt, yNew)

	errMax := 0.0
	for i := 0; i < n; i++ {
		errEst := dt * (dc1*k1[i] + dc3*k3[i] + dc4*k4[i] + dc5*k5[i] + dc6*k6[i] + dc7*k7[i])
		scale := math.Abs(y[i]) + math.Abs(dt*k1[i]) + 1e-10
		errMax = math.Max(errMax, math.Abs(errEst)/scale)
	}

	return yNew, errMax
}

// nextStep scales dt from the error ratio, bounded by minScale/maxScale.
func (d *Dopri) nextStep(dt, errRatio float64) float64 {
	if errRatio > 1 {
		return dt * math.Max(d.minScale, d.safety*math.Pow(errRatio, -0.25))
	}
	if errRatio > 0 {
		return dt * math.Min(d.maxScale, d.safety*math.Pow(errRatio, -0.2))
	}
	return dt * d.maxScale
}
