// Package gamma implements the gamma index used to compare a tested dose distribution
// against a reference one sampled on the same regular grid.
//
// For a reference point r the gamma index is
//
//	gamma(r) = sqrt( min over tested points t of (v_t - v_r)^2/dd^2 + |p_t - p_r|^2/dta^2 )
//
// where dd is the dose-difference tolerance and dta the distance-to-agreement in grid
// steps. A point passes when gamma(r) < 1.
//
// Dense evaluation returns the gamma value of every point and is available through
// several interchangeable Evaluator strategies. Windowed evaluation only answers the
// pass/fail question, which lets it restrict the search to the cube of half-width
// floor(dta) around each point.
package gamma
