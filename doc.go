// Package natality examines how the mother's race field of US natality
// (birth) records is imputed when it is not reported. When the field is
// missing, the issuing agency fills it from the father's race if the father
// has a single, unambiguous race recorded.
//
// The analysis loads a sampled CSV extract of the natality file, keeps the
// handful of columns it needs, recodes the imputation flag and derives an
// indicator for whether the father's race was usable, then compares the
// imputed and directly-reported populations: category shares side by side,
// and two-sample Kolmogorov-Smirnov tests on the continuous fields.
package natality
