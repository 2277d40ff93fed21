package f64

// Clamp is
//  math.Min(hi, math.Max(lo, x))
func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Mean is
//  var sum float64
//  for i := range x {
//      sum += x[i]
//  }
//  return sum / len(x)
//
// Mean of an empty slice is 0.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}

	var sum float64
	for _, v := range x {
		sum += v
	}
	return sum / float64(len(x))
}
