package core

/** @brief Marks a uint16 slot or id that refers to nothing. */
const InvalidIDUint16 uint16 = 0xFFFF
