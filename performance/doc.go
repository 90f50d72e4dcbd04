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
// Package performance contains helper functions relating to performance.
//
// ProfileCPU() and ProfileMem() generate profiles for use with the pprof
// tool. CalcFPS() calculates frames-per-second in aggregate along with an
// accuracy value as compared to the rate of the simulated console. It is not
// suitable for live FPS monitoring.
package performance
