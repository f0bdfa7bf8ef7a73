// Package frame drives the per-frame cycle: read input, move the camera,
// spin the model, rebuild the transforms, clear the framebuffer, draw the
// mesh and hand the result to a Presenter.
//
// Window, input and clock are collaborators behind small interfaces so the
// loop can run against a real window, a headless ticker or a test script.
package frame
