//go:build cgo

package native

/*
#cgo CFLAGS: -O2
#cgo LDFLAGS: -lm
#include <math.h>
#include <stdlib.h>

#pragma STDC FP_CONTRACT OFF

static int gamma_index(int ndim, const int* shape, const double* ref, const double* tested,
		double* out, double dd, double dta) {
	long total = 1;
	for (int k = 0; k < ndim; k++) {
		total *= shape[k];
	}

	// Row-major coordinate of every offset
	int* coords = (int*)malloc(sizeof(int) * (size_t)total * (size_t)ndim);
	if (coords == NULL) {
		return -1;
	}
	for (long i = 0; i < total; i++) {
		long rem = i;
		for (int k = ndim - 1; k >= 0; k--) {
			coords[i * ndim + k] = (int)(rem % shape[k]);
			rem /= shape[k];
		}
	}

	double dd2 = dd * dd;
	double dta2 = dta * dta;
	for (long i = 0; i < total; i++) {
		const int* pi = coords + i * ndim;
		double best = NAN;
		int found = 0;
		for (long j = 0; j < total; j++) {
			if (isnan(tested[j])) {
				continue;
			}
			const int* pj = coords + j * ndim;
			long dist2 = 0;
			for (int k = 0; k < ndim; k++) {
				long d = (long)(pj[k] - pi[k]);
				dist2 += d * d;
			}
			double diff = tested[j] - ref[i];
			double m = diff * diff / dd2 + (double)dist2 / dta2;
			if (isnan(m)) {
				continue;
			}
			if (!found || m < best) {
				best = m;
				found = 1;
			}
		}
		out[i] = found ? sqrt(best) : NAN;
	}

	free(coords);
	return 0;
}
*/
import "C"

import "unsafe"

// Available reports whether the routine was compiled in
func Available() bool { return true }

// Gamma fills out with the dense gamma index of ref against tested
func Gamma(shape []int, ref, tested, out []float64, dd, dta float64) error {
	if err := checkBuffers(shape, ref, tested, out); err != nil {
		return err
	}
	extents := make([]C.int, len(shape))
	for i, n := range shape {
		extents[i] = C.int(n)
	}
	rc := C.gamma_index(
		C.int(len(shape)),
		&extents[0],
		(*C.double)(unsafe.Pointer(&ref[0])),
		(*C.double)(unsafe.Pointer(&tested[0])),
		(*C.double)(unsafe.Pointer(&out[0])),
		C.double(dd),
		C.double(dta),
	)
	if rc != 0 {
		return ErrAllocation
	}
	return nil
}
