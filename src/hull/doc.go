// Package hull computes the three-dimensional convex hull of a finite set
// of points using Quickhull (Barber, Dobkin, Huhdanpaa, 1996).
//
// A QuickHull is built from a point set, then BuildHull is called once to
// grow a half-edge mesh outward from an initial tetrahedron until every
// input point is enclosed. The resulting faces are convex polygons whose
// vertex indices refer back to the original input and run counter-clockwise
// when viewed from outside the hull.
package hull
