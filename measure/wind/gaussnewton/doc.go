// Package gaussnewton estimates a single dominant wind vector by
// registering consecutive phase frames.
//
// Each Step linearizes the registration residual between the current
// frame and the previous frame shifted by the running wind estimate, and
// refines the estimate with a fixed number of Gauss-Newton updates. The
// wind persists between steps, so frames must be fed in time order.
package gaussnewton
