// This file is part of emuscript.
//
// emuscript is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// emuscript is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with emuscript.  If not, see <https://www.gnu.org/licenses/>.
package gui

// FeatureReq is used to request the setting of a gui attribute
// eg. toggling fullscreen.
type FeatureReq string

// FeatureReqData represents the information associated with a FeatureReq. See
// commentary for the defined FeatureReq values for the underlying type.
type FeatureReqData any

// EmulationState indicates to the GUI that the emulation is in a particular
// state.
type EmulationState int

// List of valid emulation states.
const (
	StateInitialising EmulationState = iota
	StatePaused
	StateRunning
	StateEnding
)

func (s EmulationState) String() string {
	switch s {
	case StatePaused:
		return "paused"
	case StateRunning:
		return "running"
	case StateEnding:
		return "ending"
	}
	return "initialising"
}

// List of valid feature requests. argument must be of the type specified or
// else the request will fail.
//
// Note that, like the name suggests, these are requests, they may or may not
// be satisfied depending other conditions in the GUI.
const (
	// the state of the emulation. read only
	ReqState FeatureReq = "ReqState" // EmulationState

	// whether the window fills the screen
	ReqFullScreen FeatureReq = "ReqFullScreen" // bool

	// the size of the window as a multiple of the console screen
	ReqScale FeatureReq = "ReqScale" // int

	// whether the script overlay is shown
	ReqOverlay FeatureReq = "ReqOverlay" // bool

	// the title of the window
	ReqTitle FeatureReq = "ReqTitle" // string
)
