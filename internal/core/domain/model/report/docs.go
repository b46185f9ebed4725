// Package report implements the Report aggregate, the outcome document of
// a completed verification visit.
//
// A report is created as a skeleton when its order completes and is filled
// in through subsequent updates. Completeness is a pure derivation over
// section presence; the final result verdict and the reviewer sign-off are
// orthogonal to it.
package report
