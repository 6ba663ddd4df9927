// Package watchdog supervises the control loop in simulation.
//
// On hardware the watchdog resets the controller when the loop stops
// kicking it. [Timer] reproduces that contract in software: every
// [Timer.Update] re-arms it, and if the window passes without one its
// expiry callback runs, which the simulator uses to restart the loop
// from INIT. [Systemd] forwards the same kicks to the service manager's
// watchdog via sd_notify.
package watchdog
